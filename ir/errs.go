package ir

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrPath         = errors.New("bad path")
	ErrNotFound     = errors.New("not found")
)

// TypeMismatchError is returned when a node's value is requested as a type
// other than the one it holds.
type TypeMismatchError struct {
	Want Type
	Got  Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", ErrTypeMismatch, e.Want, e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
