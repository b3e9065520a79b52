package parse

import (
	"errors"
	"fmt"

	"github.com/raws-format/go-raws/raw"
	"github.com/raws-format/go-raws/token"
)

var (
	ErrParse      = token.ErrParse
	ErrInvalidTag = raw.ErrInvalidTag

	ErrUnknownTag    = errors.New("unknown top-level tag")
	ErrDisallowedTag = errors.New("disallowed tag")
	ErrDuplicate     = errors.New("duplicate definition")
)

// DuplicateError reports two records sharing one index key; its
// message names both definition sites.
type DuplicateError struct {
	Key  raw.Key
	Prev *raw.Record
	New  *raw.Record
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s:%d: %s %s: defined both here and at %s:%d",
		e.New.Start.File, e.New.Start.Line, ErrDuplicate, e.Key,
		e.Prev.Start.File, e.Prev.Start.Line)
}
