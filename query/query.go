// Package query compiles boolean record predicates for filtering
// indexed records, as used by `raws list -where`.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/raws-format/go-raws/raw"
)

// Env is the evaluation environment of a compiled query. One Env is
// built per record; expressions reference its fields and methods
// directly, e.g.
//
//	Type == "ITEM" && Has("NAME") && Get("NAME", 1) startsWith "s"
type Env struct {
	Type    string
	Subtype string
	Name    string
	Members int

	rec *raw.Record
}

// Has reports whether the record carries a tag with the given name,
// searching subsections too.
func (e Env) Has(name string) bool {
	return e.rec.Member(name) != nil
}

// Get returns the i'th token of the first tag with the given name, or
// the empty string when the tag or token is absent. Token 0 is the tag
// name itself.
func (e Env) Get(name string, i int) string {
	tag := e.rec.Member(name)
	if tag == nil || i < 0 || i >= len(tag.Tokens) {
		return ""
	}
	return tag.Tokens[i].Text
}

// A Query is a compiled predicate over records.
type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles src against Env and requires a boolean result.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling query %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates the query against rec.
func (q *Query) Match(rec *raw.Record) (bool, error) {
	res, err := expr.Run(q.prg, Env{
		Type:    rec.Type,
		Subtype: rec.Subtype,
		Name:    rec.Name,
		Members: len(rec.Members),
		rec:     rec,
	})
	if err != nil {
		return false, err
	}
	return res.(bool), nil
}
