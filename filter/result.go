package filter

import (
	"context"
)

// Result is a resolved query. Every call runs a new query on the same builder.
type Result[T any] struct {
	b  Builder[T]
	in Input
}

// Builder exposes the underlying builder for further constraints.
func (r *Result[T]) Builder() Builder[T] {
	return r.b
}

// Get fetches every matching row. No columns means all columns.
func (r *Result[T]) Get(ctx context.Context, columns ...string) ([]*T, error) {
	return r.b.Get(ctx, columns...)
}

func (r *Result[T]) Paginate(ctx context.Context, req PageRequest) (*Page[T], error) {
	return r.b.Paginate(ctx, req.WithDefaults(r.in))
}

// SimplePaginate skips the total count.
func (r *Result[T]) SimplePaginate(ctx context.Context, req PageRequest) (*SimplePage[T], error) {
	return r.b.SimplePaginate(ctx, req.WithDefaults(r.in))
}
