// Package ormquery runs filter definitions on the orm package.
package ormquery

import (
	"context"
	"fmt"

	"ormfilter/filter"
	"ormfilter/orm"
)

// Builder collects predicates and creates a new orm.Selector for every
// terminal call, so Paginate does not leak LIMIT into a later Get.
type Builder[T any] struct {
	sess     orm.Session
	where    []orm.Predicate
	orderBy  []orm.OrderBy
	unscoped bool
}

var _ filter.Builder[any] = &Builder[any]{}

func New[T any](sess orm.Session) *Builder[T] {
	return &Builder[T]{sess: sess}
}

// Factory binds a filter definition to sess.
func Factory[T any](sess orm.Session) filter.Factory[T] {
	return func() (filter.Builder[T], error) {
		if sess == nil {
			return nil, filter.ErrNoQueryFactory
		}
		return New[T](sess), nil
	}
}

// WhereEquals turns a nil val into IS NULL.
func (b *Builder[T]) WhereEquals(field string, val any) error {
	if val == nil {
		b.where = append(b.where, orm.C(field).IsNull())
		return nil
	}
	b.where = append(b.where, orm.C(field).Eq(val))
	return nil
}

func (b *Builder[T]) WhereIn(field string, vals []any) error {
	b.where = append(b.where, orm.C(field).In(vals...))
	return nil
}

func (b *Builder[T]) Where(field string, op filter.Op, val any) error {
	c := orm.C(field)
	var p orm.Predicate
	switch op {
	case filter.OpEq:
		return b.WhereEquals(field, val)
	case filter.OpNotEq:
		p = c.NotEq(val)
	case filter.OpLt:
		p = c.Lt(val)
	case filter.OpLte:
		p = c.Lte(val)
	case filter.OpGt:
		p = c.Gt(val)
	case filter.OpGte:
		p = c.Gte(val)
	case filter.OpLike:
		pattern, ok := val.(string)
		if !ok {
			pattern = fmt.Sprint(val)
		}
		p = c.Like(pattern)
	default:
		return fmt.Errorf("ormquery: unsupported operator %q", op)
	}
	b.where = append(b.where, p)
	return nil
}

// WherePredicate adds a raw orm predicate, for handlers that need more
// than a single comparison.
func (b *Builder[T]) WherePredicate(ps ...orm.Predicate) {
	b.where = append(b.where, ps...)
}

func (b *Builder[T]) OrderBy(field string, desc bool) error {
	if desc {
		b.orderBy = append(b.orderBy, orm.Desc(field))
	} else {
		b.orderBy = append(b.orderBy, orm.Asc(field))
	}
	return nil
}

func (b *Builder[T]) IncludeSoftDeleted() {
	b.unscoped = true
}

// Selector returns a selector carrying every constraint added so far.
func (b *Builder[T]) Selector(columns ...string) *orm.Selector[T] {
	s := orm.NewSelector[T](b.sess).Where(b.where...).OrderBy(b.orderBy...)
	if len(columns) > 0 {
		cols := make([]orm.Selectable, 0, len(columns))
		for _, c := range columns {
			cols = append(cols, orm.C(c))
		}
		s.Select(cols...)
	}
	if b.unscoped {
		s.Unscoped()
	}
	return s
}

func (b *Builder[T]) Get(ctx context.Context, columns ...string) ([]*T, error) {
	return b.Selector(columns...).GetMulti(ctx)
}

func (b *Builder[T]) Paginate(ctx context.Context, req filter.PageRequest) (*filter.Page[T], error) {
	req = req.WithDefaults(filter.Input{})
	total, err := b.Selector().Count(ctx)
	if err != nil {
		return nil, err
	}
	// pages past the last row skip the query
	if int64(req.Offset()) >= total {
		return filter.NewPage[T](nil, total, req), nil
	}
	items, err := b.Selector(req.Columns...).Limit(req.PerPage).Offset(req.Offset()).GetMulti(ctx)
	if err != nil {
		return nil, err
	}
	return filter.NewPage(items, total, req), nil
}

func (b *Builder[T]) SimplePaginate(ctx context.Context, req filter.PageRequest) (*filter.SimplePage[T], error) {
	req = req.WithDefaults(filter.Input{})
	items, err := b.Selector(req.Columns...).Limit(req.PerPage + 1).Offset(req.Offset()).GetMulti(ctx)
	if err != nil {
		return nil, err
	}
	return filter.NewSimplePage(items, req), nil
}
