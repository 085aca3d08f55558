package filter

import (
	"context"
)

type Op string

const (
	OpEq    Op = "="
	OpNotEq Op = "<>"
	OpLt    Op = "<"
	OpLte   Op = "<="
	OpGt    Op = ">"
	OpGte   Op = ">="
	OpLike  Op = "LIKE"
)

// Builder is the query builder of one model. A Builder is owned by a
// single Apply and is mutated in place by every pass.
type Builder[T any] interface {
	// WhereEquals adds field = val. A nil val means field IS NULL.
	WhereEquals(field string, val any) error
	// WhereIn adds field IN (vals...). An empty vals matches nothing.
	WhereIn(field string, vals []any) error
	Where(field string, op Op, val any) error
	OrderBy(field string, desc bool) error
	// IncludeSoftDeleted drops the soft delete condition.
	IncludeSoftDeleted()

	Get(ctx context.Context, columns ...string) ([]*T, error)
	Paginate(ctx context.Context, req PageRequest) (*Page[T], error)
	SimplePaginate(ctx context.Context, req PageRequest) (*SimplePage[T], error)
}

// Factory returns a new Builder bound to the model. It is called once
// per Apply.
type Factory[T any] func() (Builder[T], error)
