package errs

import (
	"errors"
	"fmt"
)

var (
	ErrPointOnly     = errors.New("orm: only a pointer to a struct is supported")
	ErrNoRows        = errors.New("orm: no rows")
	ErrInsertZeroRow = errors.New("orm: inserting zero rows")
)

func NewUnsupportedExpression(expr any) error {
	return fmt.Errorf("orm: unsupported expression %v", expr)
}

func NewUnsupportedSelectable(col any) error {
	return fmt.Errorf("orm: unsupported selectable %v", col)
}

// NewUnknownField 字段名和列名都没有匹配上
func NewUnknownField(name any) error {
	return fmt.Errorf("orm: unknown field %s", name)
}

func NewUnknownColumn(name any) error {
	return fmt.Errorf("orm: unknown column %s", name)
}

func NewErrInvalidTagContent(pair string) error {
	return fmt.Errorf("orm: invalid tag %s", pair)
}

func NewErrFailedToRollbackTx(bizErr error, rbErr error, panicked bool) error {
	return fmt.Errorf("orm: rollback failed, business error: %w, rollback error: %s, panicked: %t",
		bizErr, rbErr, panicked)
}
