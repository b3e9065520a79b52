// Package encode writes parsed raws back out. Without options the
// output reproduces the imported source byte for byte; with colors it
// is a terminal view and no longer round-trippable.
package encode

import (
	"io"

	"github.com/raws-format/go-raws/raw"
)

// File writes f's top-level nodes in original order.
func File(f *raw.File, w io.Writer, opts ...Option) error {
	es := &encState{w: w}
	for _, o := range opts {
		o(es)
	}
	for _, n := range f.Nodes {
		if err := es.node(n); err != nil {
			return err
		}
	}
	return nil
}

// Document writes every file of doc in import order.
func Document(doc *raw.Document, w io.Writer, opts ...Option) error {
	for _, f := range doc.Files() {
		if err := File(f, w, opts...); err != nil {
			return err
		}
	}
	return nil
}

// Record writes a single record, start tag first.
func Record(rec *raw.Record, w io.Writer, opts ...Option) error {
	es := &encState{w: w}
	for _, o := range opts {
		o(es)
	}
	return es.node(rec)
}

type encState struct {
	w      io.Writer
	colors *Colors
}

func (es *encState) node(n raw.Node) error {
	if es.colors == nil {
		_, err := io.WriteString(es.w, raw.Text(n))
		return err
	}
	switch n := n.(type) {
	case *raw.Comment:
		return es.write(es.colors.sprint(CommentColor, n.Text))
	case *raw.Tag:
		return es.tag(n)
	case *raw.Record:
		if err := es.tag(n.Start); err != nil {
			return err
		}
		for _, m := range n.Members {
			if err := es.node(m); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func (es *encState) tag(t *raw.Tag) error {
	if err := es.write(es.colors.sprint(CommentColor, t.Comment)); err != nil {
		return err
	}
	if err := es.write(es.colors.sprint(BracketColor, "[")); err != nil {
		return err
	}
	for i := range t.Tokens {
		if i > 0 {
			if err := es.write(es.colors.sprint(SepColor, ":")); err != nil {
				return err
			}
		}
		attr := ValueColor
		switch {
		case i == 0:
			attr = NameColor
		case t.Tokens[i].Kind != raw.Sym:
			attr = NumberColor
		}
		if err := es.write(es.colors.sprint(attr, t.Tokens[i].Text)); err != nil {
			return err
		}
	}
	return es.write(es.colors.sprint(BracketColor, "]"))
}

func (es *encState) write(s string) error {
	_, err := io.WriteString(es.w, s)
	return err
}
