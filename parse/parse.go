package parse

import (
	"fmt"
	"io"

	"github.com/raws-format/go-raws/debug"
	"github.com/raws-format/go-raws/raw"
	"github.com/raws-format/go-raws/syntax"
	"github.com/raws-format/go-raws/token"
)

// Import tokenizes r and assembles its records into doc under the
// grammar in reg. The filename labels diagnostics; the stream is
// consumed in one pass.
func Import(doc *raw.Document, reg *syntax.Registry, filename string, r io.Reader, opts ...Option) error {
	return run(doc, reg, filename, token.NewTokenizer(filename, r), opts)
}

// ImportBytes imports an in-memory file.
func ImportBytes(doc *raw.Document, reg *syntax.Registry, filename string, d []byte, opts ...Option) error {
	return run(doc, reg, filename, token.NewTokenizerFromBytes(filename, d), opts)
}

func run(doc *raw.Document, reg *syntax.Registry, filename string, tk *token.Tokenizer, opts []Option) error {
	o := &parseOpts{factory: defaultFactory}
	for _, f := range opts {
		f(o)
	}
	a := &assembler{
		doc:  doc,
		reg:  reg,
		file: doc.AddFile(filename),
		opts: o,
	}
	for {
		tok, err := tk.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := a.feed(tok); err != nil {
			return err
		}
	}
	return a.closeRecord()
}

// Tag parses a single bracketed tag from text, for programmatic
// construction and insertion. A constructed tag renders on its own
// line unless text carries leading comment whitespace of its own.
func Tag(reg *syntax.Registry, in *raw.Interner, text string) (*raw.Tag, error) {
	toks, err := token.Tokenize("", []byte(text))
	if err != nil {
		return nil, err
	}
	if len(toks) != 1 || toks[0].Type != token.TTag {
		return nil, fmt.Errorf("%w: %q is not a single tag", ErrParse, text)
	}
	tag, err := raw.NewTag(reg.TagKind(toks[0].Fields[0]), toks[0].Fields, in)
	if err != nil {
		return nil, err
	}
	tag.Comment = toks[0].Comment
	if tag.Comment == "" {
		tag.Comment = "\n"
	}
	return tag, nil
}

// assembler is the object-building state machine. Its state is the
// current object type (nil before the first [OBJECT:..]), the open
// record, and the open subsection within that record.
type assembler struct {
	doc  *raw.Document
	reg  *syntax.Registry
	file *raw.File
	opts *parseOpts

	objType *syntax.ObjectType
	rec     *raw.Record
	sec     *raw.Record
}

func (a *assembler) feed(tok *token.Token) error {
	if tok.Type == token.TComment {
		a.file.Nodes = append(a.file.Nodes, &raw.Comment{File: a.file.Name, Text: tok.Text})
		return nil
	}
	tag, err := a.opts.factory(a.reg, tok.Fields, a.doc.Interner())
	if err != nil {
		return token.NewError(a.file.Name, tok.Line, err)
	}
	tag.File = a.file.Name
	tag.Line = tok.Line
	tag.Comment = tok.Comment

	if tag.Kind.Variant == syntax.ObjectSwitch {
		return a.switchObject(tag)
	}
	if a.objType != nil {
		if _, ok := a.objType.StartTags[tag.Name()]; ok {
			return a.openRecord(tag)
		}
	}
	if a.rec == nil {
		return token.NewError(tag.File, tag.Line,
			fmt.Errorf("%w %s: no object can own it", ErrUnknownTag, tag))
	}
	return a.member(tag)
}

func (a *assembler) switchObject(tag *raw.Tag) error {
	if err := a.closeRecord(); err != nil {
		return err
	}
	typeName := tag.Identifier()
	ot, ok := a.reg.ObjectType(typeName)
	if !ok {
		ot = a.reg.DeclareGeneric(typeName)
		if debug.Parse() {
			debug.Logf("%s:%d: synthesized generic object type %s\n",
				tag.File, tag.Line, typeName)
		}
	}
	a.objType = ot
	a.file.Nodes = append(a.file.Nodes, tag)
	return nil
}

func (a *assembler) openRecord(tag *raw.Tag) error {
	if err := a.closeRecord(); err != nil {
		return err
	}
	a.rec = &raw.Record{
		Type:    a.objType.Name,
		Subtype: tag.Name(),
		Name:    tag.Identifier(),
		Start:   tag,
	}
	a.file.Nodes = append(a.file.Nodes, a.rec)
	return nil
}

// closeRecord finalizes the open record into the document index,
// applying the duplicate policy.
func (a *assembler) closeRecord() error {
	a.sec = nil
	rec := a.rec
	if rec == nil {
		return nil
	}
	a.rec = nil
	prev := a.doc.Index(rec)
	if prev == nil {
		return nil
	}
	if a.opts.overwrite {
		if debug.Parse() {
			debug.Logf("%s overwrites definition at %s:%d\n",
				rec.Key(), prev.Start.File, prev.Start.Line)
		}
		return nil
	}
	return &DuplicateError{Key: rec.Key(), Prev: prev, New: rec}
}

// member routes a non-start tag into the open record or its open
// subsection. A tag belonging to the parent's explicit vocabulary
// ends the subsection; so does a tag the subsection's grammar
// rejects, which is then delivered to the parent.
func (a *assembler) member(tag *raw.Tag) error {
	name := tag.Name()
	if a.sec != nil {
		switch {
		case a.parentClaims(name):
			a.sec = nil
		case a.sec.Section.Accepts(name):
			a.sec.Append(tag)
			return nil
		default:
			a.sec = nil
		}
	}
	if sec, ok := a.objType.Sections[name]; ok {
		sub := &raw.Record{
			Type:    a.rec.Type,
			Subtype: name,
			Name:    tag.Identifier(),
			Start:   tag,
			Section: sec,
		}
		a.rec.Members = append(a.rec.Members, sub)
		a.sec = sub
		return nil
	}
	if _, ok := a.objType.Tags[name]; ok {
		a.rec.Append(tag)
		return nil
	}
	if a.objType.AllowUnknown {
		a.rec.Append(tag)
		return nil
	}
	return token.NewError(tag.File, tag.Line,
		fmt.Errorf("%w: %s is not allowed in %s", ErrDisallowedTag, tag, a.rec.Key()))
}

func (a *assembler) parentClaims(name string) bool {
	if _, ok := a.objType.Tags[name]; ok {
		return true
	}
	_, ok := a.objType.Sections[name]
	return ok
}
