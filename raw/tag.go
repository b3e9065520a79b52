package raw

import (
	"fmt"
	"strings"

	"github.com/raws-format/go-raws/syntax"
)

// Node is one element of a file or record: *Tag, *Record or
// *Comment.
type Node interface {
	node()
}

// Tag is one [NAME:ARG:...] group: its grammar kind, coerced tokens,
// source location, and the verbatim text that preceded its opening
// bracket.
type Tag struct {
	Kind    *syntax.TagKind
	Tokens  []Value
	File    string
	Line    int
	Comment string
}

func (t *Tag) node() {}

func (t *Tag) check() error {
	if max := t.Kind.MaxTokens; max != 0 && len(t.Tokens) > max {
		return fmt.Errorf("%w %s: too many tokens (%d > %d)",
			ErrInvalidTag, t, len(t.Tokens), max)
	}
	if min := t.Kind.MinTokens; min != 0 && len(t.Tokens) < min {
		return fmt.Errorf("%w %s: too few tokens (%d < %d)",
			ErrInvalidTag, t, len(t.Tokens), min)
	}
	return nil
}

// NewTag coerces toks and checks them against kind's token bounds.
// Programmatically constructed tags for insertion go through the same
// path, see parse.Tag.
func NewTag(kind *syntax.TagKind, toks []string, in *Interner) (*Tag, error) {
	t := &Tag{Kind: kind, Tokens: make([]Value, len(toks))}
	for i, tok := range toks {
		t.Tokens[i] = Coerce(tok, in)
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	return t, nil
}

// Check revalidates the token count against the kind's bounds, for
// Document.Validate.
func (t *Tag) Check() error {
	return t.check()
}

// Name returns the first token, the tag's name.
func (t *Tag) Name() string {
	if len(t.Tokens) == 0 {
		return ""
	}
	return t.Tokens[0].Text
}

// Identifier returns the second token: the record identifier of a
// start tag [SUBTYPE:ID], or the target type of an [OBJECT:TYPE]
// switch.
func (t *Tag) Identifier() string {
	if len(t.Tokens) < 2 {
		return ""
	}
	return t.Tokens[1].Text
}

// String renders the bracketed form without the preceding comment.
func (t *Tag) String() string {
	texts := make([]string, len(t.Tokens))
	for i := range t.Tokens {
		texts[i] = t.Tokens[i].Text
	}
	return "[" + strings.Join(texts, ":") + "]"
}

// Comment is free text outside any tag, preserved verbatim.
type Comment struct {
	File string
	Text string
}

func (c *Comment) node() {}
