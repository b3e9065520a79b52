package parse

import (
	"github.com/raws-format/go-raws/raw"
	"github.com/raws-format/go-raws/syntax"
)

// Factory constructs a tag from its raw tokens. The default resolves
// the kind by name in the registry and enforces its token bounds;
// replacing it is the seam through which callers select specialized
// tag construction during parsing.
type Factory func(reg *syntax.Registry, toks []string, in *raw.Interner) (*raw.Tag, error)

type parseOpts struct {
	overwrite bool
	factory   Factory
}

type Option func(*parseOpts)

// Overwrite selects the last-wins duplicate policy: a record whose
// key is already indexed replaces the earlier record instead of
// failing the import.
func Overwrite(v bool) Option {
	return func(o *parseOpts) { o.overwrite = v }
}

func WithFactory(f Factory) Option {
	return func(o *parseOpts) { o.factory = f }
}

func defaultFactory(reg *syntax.Registry, toks []string, in *raw.Interner) (*raw.Tag, error) {
	var name string
	if len(toks) > 0 {
		name = toks[0]
	}
	return raw.NewTag(reg.TagKind(name), toks, in)
}
