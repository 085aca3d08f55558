package filter

import (
	"context"
	"errors"
)

type call struct {
	op    string
	field string
	val   any
}

type User struct {
	Id     int64
	Name   string
	Status string
}

// recorder is a Builder that only records what the resolver asked for.
type recorder struct {
	calls    []call
	rows     []*User
	total    int64
	whereErr error
	lastPage PageRequest
}

var _ Builder[User] = &recorder{}

func (r *recorder) WhereEquals(field string, val any) error {
	if r.whereErr != nil {
		return r.whereErr
	}
	r.calls = append(r.calls, call{op: "=", field: field, val: val})
	return nil
}

func (r *recorder) WhereIn(field string, vals []any) error {
	if r.whereErr != nil {
		return r.whereErr
	}
	r.calls = append(r.calls, call{op: "IN", field: field, val: vals})
	return nil
}

func (r *recorder) Where(field string, op Op, val any) error {
	r.calls = append(r.calls, call{op: string(op), field: field, val: val})
	return nil
}

func (r *recorder) OrderBy(field string, desc bool) error {
	r.calls = append(r.calls, call{op: "ORDER", field: field, val: desc})
	return nil
}

func (r *recorder) IncludeSoftDeleted() {
	r.calls = append(r.calls, call{op: "WITH_TRASHED"})
}

func (r *recorder) Get(ctx context.Context, columns ...string) ([]*User, error) {
	r.calls = append(r.calls, call{op: "GET", val: columns})
	return r.rows, nil
}

func (r *recorder) Paginate(ctx context.Context, req PageRequest) (*Page[User], error) {
	r.lastPage = req
	return NewPage(r.rows, r.total, req), nil
}

func (r *recorder) SimplePaginate(ctx context.Context, req PageRequest) (*SimplePage[User], error) {
	r.lastPage = req
	return NewSimplePage(r.rows, req), nil
}

// newDef binds a fresh recorder to every Apply and hands the last one back.
func newDef(opts ...Option[User]) (*Definition[User], func() *recorder) {
	var last *recorder
	factory := func() (Builder[User], error) {
		last = &recorder{}
		return last, nil
	}
	d, err := New[User](factory, opts...)
	if err != nil {
		panic(err)
	}
	return d, func() *recorder { return last }
}

var errBoom = errors.New("boom")
