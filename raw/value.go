package raw

import "strconv"

// Kind of a coerced token value.
type Kind int

const (
	Int Kind = iota
	Float
	Sym
)

func (k Kind) String() string {
	return map[Kind]string{
		Int:   "Int",
		Float: "Float",
		Sym:   "Sym",
	}[k]
}

// Value is one coerced tag token. Text always holds the verbatim
// source spelling and all rendering uses it, so numeric tokens round
// trip with the digits the source used. The coerced forms exist for
// programmatic comparison.
type Value struct {
	Kind  Kind
	Int64 int64
	F64   float64
	Text  string
}

// Coerce converts a raw token to the first successful parse among
// integer, float, and interned symbol.
func Coerce(tok string, in *Interner) Value {
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return Value{Kind: Int, Int64: i, Text: tok}
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return Value{Kind: Float, F64: f, Text: tok}
	}
	return Value{Kind: Sym, Text: in.Intern(tok)}
}

func (v Value) String() string {
	return v.Text
}

// Interner deduplicates token strings for one parsing session. Raws
// repeat identifiers heavily; interning stores each spelling once.
type Interner struct {
	table map[string]string
}

func NewInterner() *Interner {
	return &Interner{table: map[string]string{}}
}

func (in *Interner) Intern(s string) string {
	if t, ok := in.table[s]; ok {
		return t
	}
	in.table[s] = s
	return s
}

// Len returns the number of distinct interned strings.
func (in *Interner) Len() int {
	return len(in.table)
}
