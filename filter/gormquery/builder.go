// Package gormquery runs filter definitions on github.com/jinzhu/gorm.
package gormquery

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"ormfilter/filter"
)

// Builder wraps a *gorm.DB scoped to model T. Request keys are checked
// against the model fields before they reach SQL.
type Builder[T any] struct {
	db    *gorm.DB
	scope *gorm.Scope
}

var _ filter.Builder[any] = &Builder[any]{}

func New[T any](db *gorm.DB) *Builder[T] {
	return &Builder[T]{
		db:    db.Model(new(T)),
		scope: db.NewScope(new(T)),
	}
}

func Factory[T any](db *gorm.DB) filter.Factory[T] {
	return func() (filter.Builder[T], error) {
		if db == nil {
			return nil, filter.ErrNoQueryFactory
		}
		return New[T](db), nil
	}
}

// column accepts a struct field name or a column name.
func (b *Builder[T]) column(field string) (string, error) {
	fd, ok := b.scope.FieldByName(field)
	if !ok || fd.IsIgnored {
		return "", fmt.Errorf("gormquery: unknown field %q", field)
	}
	return b.scope.Quote(fd.DBName), nil
}

func (b *Builder[T]) WhereEquals(field string, val any) error {
	col, err := b.column(field)
	if err != nil {
		return err
	}
	if val == nil {
		b.db = b.db.Where(col + " IS NULL")
		return nil
	}
	b.db = b.db.Where(col+" = ?", val)
	return nil
}

func (b *Builder[T]) WhereIn(field string, vals []any) error {
	col, err := b.column(field)
	if err != nil {
		return err
	}
	if len(vals) == 0 {
		b.db = b.db.Where("1 = 0")
		return nil
	}
	b.db = b.db.Where(col+" IN (?)", vals)
	return nil
}

func (b *Builder[T]) Where(field string, op filter.Op, val any) error {
	switch op {
	case filter.OpEq:
		return b.WhereEquals(field, val)
	case filter.OpNotEq, filter.OpLt, filter.OpLte, filter.OpGt, filter.OpGte, filter.OpLike:
	default:
		return fmt.Errorf("gormquery: unsupported operator %q", op)
	}
	col, err := b.column(field)
	if err != nil {
		return err
	}
	b.db = b.db.Where(fmt.Sprintf("%s %s ?", col, op), val)
	return nil
}

func (b *Builder[T]) OrderBy(field string, desc bool) error {
	col, err := b.column(field)
	if err != nil {
		return err
	}
	if desc {
		col += " DESC"
	}
	b.db = b.db.Order(col)
	return nil
}

func (b *Builder[T]) IncludeSoftDeleted() {
	b.db = b.db.Unscoped()
}

// DB returns the scoped *gorm.DB for constraints the filter API lacks.
func (b *Builder[T]) DB() *gorm.DB {
	return b.db
}

func (b *Builder[T]) selected(columns []string) (*gorm.DB, error) {
	if len(columns) == 0 {
		return b.db, nil
	}
	cols := make([]string, 0, len(columns))
	for _, c := range columns {
		col, err := b.column(c)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return b.db.Select(cols), nil
}

// Get checks ctx only before the query, gorm v1 takes no context.
func (b *Builder[T]) Get(ctx context.Context, columns ...string) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db, err := b.selected(columns)
	if err != nil {
		return nil, err
	}
	items := make([]*T, 0, 8)
	if err = db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (b *Builder[T]) Paginate(ctx context.Context, req filter.PageRequest) (*filter.Page[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req = req.WithDefaults(filter.Input{})
	var total int64
	if err := b.db.Count(&total).Error; err != nil {
		return nil, err
	}
	if int64(req.Offset()) >= total {
		return filter.NewPage[T](nil, total, req), nil
	}
	db, err := b.selected(req.Columns)
	if err != nil {
		return nil, err
	}
	items := make([]*T, 0, req.PerPage)
	if err = db.Offset(req.Offset()).Limit(req.PerPage).Find(&items).Error; err != nil {
		return nil, err
	}
	return filter.NewPage(items, total, req), nil
}

func (b *Builder[T]) SimplePaginate(ctx context.Context, req filter.PageRequest) (*filter.SimplePage[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req = req.WithDefaults(filter.Input{})
	db, err := b.selected(req.Columns)
	if err != nil {
		return nil, err
	}
	items := make([]*T, 0, req.PerPage+1)
	if err = db.Offset(req.Offset()).Limit(req.PerPage + 1).Find(&items).Error; err != nil {
		return nil, err
	}
	return filter.NewSimplePage(items, req), nil
}
