package token

import "strings"

type Type int

const (
	TComment Type = iota
	TTag
)

func (t Type) String() string {
	return map[Type]string{
		TComment: "TComment",
		TTag:     "TTag",
	}[t]
}

// Token is one top-level element of a raws stream.
//
// A TTag token carries the colon-separated fields of one [..] group,
// the 1-based line of its opening bracket, and the verbatim text
// (whitespace and comments included) that preceded it. A TComment
// token carries trailing text after the last tag of the stream.
type Token struct {
	Type    Type
	Fields  []string // TTag: the colon separated tokens, name first
	Text    string   // TComment: verbatim text
	Comment string   // TTag: verbatim text preceding the [
	Line    int      // TTag: line of the [
}

func (t *Token) String() string {
	if t.Type == TComment {
		return t.Text
	}
	return "[" + strings.Join(t.Fields, ":") + "]"
}
