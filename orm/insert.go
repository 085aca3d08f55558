package orm

import (
	"context"
	"database/sql"

	"ormfilter/orm/internal/errs"
	"ormfilter/orm/model"
)

type Inserter[T any] struct {
	builder

	sess    Session
	values  []*T
	columns []string
}

var _ Executor = &Inserter[any]{}

func NewInserter[T any](sess Session) *Inserter[T] {
	c := sess.getCore()
	return &Inserter[T]{
		builder: builder{
			core:   c,
			quoter: c.dialect.quoter(),
		},
		sess: sess,
	}
}

// Columns 指定插入的列，不指定就是全部列
func (i *Inserter[T]) Columns(cols ...string) *Inserter[T] {
	i.columns = cols
	return i
}

func (i *Inserter[T]) Values(vals ...*T) *Inserter[T] {
	i.values = vals
	return i
}

func (i *Inserter[T]) Build() (*Query, error) {
	if len(i.values) == 0 {
		return nil, errs.ErrInsertZeroRow
	}
	if i.model == nil {
		m, err := i.r.Get(i.values[0])
		if err != nil {
			return nil, err
		}
		i.model = m
	}
	i.reset()
	i.sb.WriteString("INSERT INTO ")
	i.quote(i.model.TableName)
	i.sb.WriteByte('(')

	// 不能遍历 FieldMap，map 的遍历顺序不固定
	fields := i.model.Fields
	if len(i.columns) > 0 {
		fields = make([]*model.Field, 0, len(i.columns))
		for _, c := range i.columns {
			fd, ok := i.model.Lookup(c)
			if !ok {
				return nil, errs.NewUnknownColumn(c)
			}
			fields = append(fields, fd)
		}
	}
	for idx, fd := range fields {
		if idx > 0 {
			i.sb.WriteByte(',')
		}
		i.quote(fd.ColName)
	}
	i.sb.WriteString(") VALUES ")

	i.args = make([]any, 0, len(i.values)*len(fields))
	for j, v := range i.values {
		if j > 0 {
			i.sb.WriteByte(',')
		}
		i.sb.WriteByte('(')
		val := i.creator(i.model, v)
		for idx, fd := range fields {
			if idx > 0 {
				i.sb.WriteByte(',')
			}
			arg, err := val.Field(fd.GoName)
			if err != nil {
				return nil, err
			}
			i.addArg(arg)
		}
		i.sb.WriteByte(')')
	}
	i.sb.WriteByte(';')
	return &Query{
		SQL:  i.sb.String(),
		Args: i.args,
	}, nil
}

func (i *Inserter[T]) Exec(ctx context.Context) Result {
	if i.model == nil {
		var err error
		i.model, err = i.r.Get(new(T))
		if err != nil {
			return Result{err: err}
		}
	}
	res := exec(ctx, i.sess, i.core, &QueryContext{
		Type:    "INSERT",
		Builder: i,
		Model:   i.model,
	})
	var sqlRes sql.Result
	if r, ok := res.Result.(Result); ok {
		sqlRes = r.res
	}
	return Result{
		err: res.Err,
		res: sqlRes,
	}
}
