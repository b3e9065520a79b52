package raw

import (
	"fmt"
	"slices"
	"strings"
)

// File is the parsed form of one source file: its top-level nodes
// (object switch tags, records, bare comments) in original order.
type File struct {
	Name  string
	Nodes []Node
}

// Text renders the file back to source text.
func (f *File) Text() string {
	var sb strings.Builder
	for _, n := range f.Nodes {
		writeNode(&sb, n)
	}
	return sb.String()
}

// Document holds every imported file and a global record index keyed
// by (object type, subtype, identifier). The interner it owns lives
// as long as the document.
type Document struct {
	interner *Interner
	files    map[string]*File
	order    []string
	index    map[Key]*Record
}

func NewDocument() *Document {
	return &Document{
		interner: NewInterner(),
		files:    map[string]*File{},
		index:    map[Key]*Record{},
	}
}

func (d *Document) Interner() *Interner {
	return d.interner
}

// AddFile begins a fresh file, dropping any previous import under the
// same name.
func (d *Document) AddFile(name string) *File {
	if _, ok := d.files[name]; ok {
		d.DropFile(name)
	}
	f := &File{Name: name}
	d.files[name] = f
	d.order = append(d.order, name)
	return f
}

func (d *Document) File(name string) (*File, bool) {
	f, ok := d.files[name]
	return f, ok
}

// Files returns the imported files in import order.
func (d *Document) Files() []*File {
	res := make([]*File, 0, len(d.order))
	for _, name := range d.order {
		res = append(res, d.files[name])
	}
	return res
}

// DropFile removes a file and the index entries its records hold.
// Callers use it to discard a failed import before moving on to the
// next file of a batch.
func (d *Document) DropFile(name string) {
	if _, ok := d.files[name]; !ok {
		return
	}
	delete(d.files, name)
	d.order = slices.DeleteFunc(d.order, func(n string) bool { return n == name })
	for key, rec := range d.index {
		if rec.Start.File == name {
			delete(d.index, key)
		}
	}
}

// Index inserts rec under its key and returns the record previously
// indexed there, if any. The duplicate policy is the caller's.
func (d *Document) Index(rec *Record) *Record {
	key := rec.Key()
	prev := d.index[key]
	d.index[key] = rec
	return prev
}

// Lookup finds a record by (object type, subtype, identifier).
func (d *Document) Lookup(typ, subtype, name string) (*Record, bool) {
	rec, ok := d.index[Key{Type: typ, Subtype: subtype, Name: name}]
	return rec, ok
}

// Records returns all indexed records sorted by key.
func (d *Document) Records() []*Record {
	keys := make([]Key, 0, len(d.index))
	for k := range d.index {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		return strings.Compare(a.String(), b.String())
	})
	res := make([]*Record, len(keys))
	for i, k := range keys {
		res[i] = d.index[k]
	}
	return res
}

// Render reconstructs the named file's source text.
func (d *Document) Render(name string) (string, error) {
	f, ok := d.files[name]
	if !ok {
		return "", fmt.Errorf("file %q: %w", name, ErrNotFound)
	}
	return f.Text(), nil
}

// Validate re-checks every tag's token count against its kind's
// declared bounds. Grammar acceptance and duplicate checks are
// enforced during import and not repeated here.
func (d *Document) Validate() []error {
	var errs []error
	check := func(t *Tag) {
		if err := t.Check(); err != nil {
			errs = append(errs, fmt.Errorf("%s:%d: %w", t.File, t.Line, err))
		}
	}
	for _, name := range d.order {
		for _, n := range d.files[name].Nodes {
			switch n := n.(type) {
			case *Tag:
				check(n)
			case *Record:
				check(n.Start)
				for _, t := range n.Tags() {
					check(t)
				}
			}
		}
	}
	return errs
}

func writeNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Comment:
		sb.WriteString(n.Text)
	case *Tag:
		sb.WriteString(n.Comment)
		sb.WriteString(n.String())
	case *Record:
		writeNode(sb, n.Start)
		for _, m := range n.Members {
			writeNode(sb, m)
		}
	}
}

// Text renders any node to its exact source form.
func Text(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}
