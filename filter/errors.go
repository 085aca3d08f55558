package filter

import (
	"errors"
	"fmt"
)

var (
	ErrNoQueryFactory   = errors.New("filter: no query factory bound to the definition")
	ErrSealed           = errors.New("filter: definition is sealed after the first Apply")
	ErrNilHandler       = errors.New("filter: nil handler")
	ErrUnsupportedValue = errors.New("filter: unsupported value")
)

// FieldError is returned when a handler of Field fails.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("filter: field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
