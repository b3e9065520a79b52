package raw

import "errors"

var (
	ErrInvalidTag = errors.New("invalid tag")
	ErrNotFound   = errors.New("not found")
)
