package token

import (
	"errors"
	"fmt"
)

var ErrParse = errors.New("parse error")

// Error locates an error in a source file.
type Error struct {
	File string
	Line int
	Err  error
}

func NewError(file string, line int, err error) *Error {
	return &Error{File: file, Line: line, Err: err}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Err.Error())
}
