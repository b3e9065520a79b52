package raw

import (
	"fmt"

	"github.com/raws-format/go-raws/syntax"
)

// Record is one assembled object: the start tag that opened it plus
// the member tags and subsections that followed. A subsection is
// itself a Record, nested in its parent's member list, with Section
// set to its grammar.
type Record struct {
	Type    string // object type name
	Subtype string // start tag name
	Name    string // identifier
	Start   *Tag
	Section *syntax.Section
	Members []Node
}

func (r *Record) node() {}

// Key returns the record's index key.
func (r *Record) Key() Key {
	return Key{Type: r.Type, Subtype: r.Subtype, Name: r.Name}
}

// Append adds a member tag. Appending is the only mutation records
// support.
func (r *Record) Append(t *Tag) {
	r.Members = append(r.Members, t)
}

// Member returns the first member tag named name, looking inside
// subsections too, or nil.
func (r *Record) Member(name string) *Tag {
	for _, m := range r.Members {
		switch m := m.(type) {
		case *Tag:
			if m.Name() == name {
				return m
			}
		case *Record:
			if t := m.Member(name); t != nil {
				return t
			}
		}
	}
	return nil
}

// Tags returns the record's member tags in order, descending into
// subsections.
func (r *Record) Tags() []*Tag {
	var res []*Tag
	for _, m := range r.Members {
		switch m := m.(type) {
		case *Tag:
			res = append(res, m)
		case *Record:
			res = append(res, m.Start)
			res = append(res, m.Tags()...)
		}
	}
	return res
}

func (r *Record) String() string {
	return fmt.Sprintf("%s (+ %d members)", r.Start, len(r.Members))
}

// Key locates a record in a document.
type Key struct {
	Type    string
	Subtype string
	Name    string
}

func (k Key) String() string {
	return k.Type + "/" + k.Subtype + "/" + k.Name
}
