package orm

import (
	"context"

	"ormfilter/orm/internal/errs"
)

type Selectable interface {
	selectable()
}

type Selector[T any] struct {
	builder

	columns []Selectable
	where   []Predicate
	orderBy []OrderBy
	limit   int
	offset  int
	// unscoped 为 true 时不过滤软删除的数据
	unscoped bool

	sess Session
}

var _ Querier[any] = &Selector[any]{}

func NewSelector[T any](sess Session) *Selector[T] {
	c := sess.getCore()
	return &Selector[T]{
		builder: builder{
			core:   c,
			quoter: c.dialect.quoter(),
		},
		sess: sess,
	}
}

func (s *Selector[T]) Build() (*Query, error) {
	if err := s.initModel(); err != nil {
		return nil, err
	}
	s.reset()
	s.sb.WriteString("SELECT ")
	if err := s.buildColumns(); err != nil {
		return nil, err
	}
	s.sb.WriteString(" FROM ")
	s.quote(s.model.TableName)

	ps := s.predicates()
	if len(ps) > 0 {
		s.sb.WriteString(" WHERE ")
		if err := s.buildPredicates(ps); err != nil {
			return nil, err
		}
	}

	if len(s.orderBy) > 0 {
		s.sb.WriteString(" ORDER BY ")
		for i, ob := range s.orderBy {
			if i > 0 {
				s.sb.WriteByte(',')
			}
			if err := s.buildColumn(C(ob.col)); err != nil {
				return nil, err
			}
			s.sb.WriteByte(' ')
			s.sb.WriteString(ob.order)
		}
	}
	if s.limit > 0 {
		s.sb.WriteString(" LIMIT ")
		s.addArg(s.limit)
	}
	if s.offset > 0 {
		s.sb.WriteString(" OFFSET ")
		s.addArg(s.offset)
	}
	s.sb.WriteByte(';')
	return &Query{
		SQL:  s.sb.String(),
		Args: s.args,
	}, nil
}

func (s *Selector[T]) initModel() error {
	if s.model != nil {
		return nil
	}
	var err error
	s.model, err = s.r.Get(new(T))
	return err
}

// predicates 在用户条件后追加软删除条件，不修改 s.where
func (s *Selector[T]) predicates() []Predicate {
	sd := s.model.SoftDelete
	if sd == nil || s.unscoped {
		return s.where
	}
	ps := make([]Predicate, 0, len(s.where)+1)
	ps = append(ps, s.where...)
	return append(ps, C(sd.GoName).IsNull())
}

func (s *Selector[T]) buildColumns() error {
	if len(s.columns) == 0 {
		s.sb.WriteByte('*')
		return nil
	}
	for i, col := range s.columns {
		if i > 0 {
			s.sb.WriteByte(',')
		}
		switch c := col.(type) {
		case Column:
			if err := s.buildColumn(c); err != nil {
				return err
			}
		case Aggregate:
			s.sb.WriteString(c.fn)
			s.sb.WriteByte('(')
			if err := s.buildColumn(C(c.arg)); err != nil {
				return err
			}
			s.sb.WriteByte(')')
			if c.alias != "" {
				s.sb.WriteString(" AS ")
				s.quote(c.alias)
			}
		case RawExpr:
			s.writeRaw(c.raw, c.args)
		default:
			return errs.NewUnsupportedSelectable(c)
		}
	}
	return nil
}

// Where 追加条件，多次调用之间用 AND 连接
func (s *Selector[T]) Where(ps ...Predicate) *Selector[T] {
	s.where = append(s.where, ps...)
	return s
}

func (s *Selector[T]) Select(cols ...Selectable) *Selector[T] {
	s.columns = cols
	return s
}

func (s *Selector[T]) OrderBy(obs ...OrderBy) *Selector[T] {
	s.orderBy = append(s.orderBy, obs...)
	return s
}

func (s *Selector[T]) Limit(limit int) *Selector[T] {
	s.limit = limit
	return s
}

func (s *Selector[T]) Offset(offset int) *Selector[T] {
	s.offset = offset
	return s
}

// Unscoped 查询结果包含软删除的数据
func (s *Selector[T]) Unscoped() *Selector[T] {
	s.unscoped = true
	return s
}

func (s *Selector[T]) Get(ctx context.Context) (*T, error) {
	if err := s.initModel(); err != nil {
		return nil, err
	}
	res := get[T](ctx, s.sess, s.core, &QueryContext{
		Type:    "SELECT",
		Builder: s,
		Model:   s.model,
	})
	if res.Result != nil {
		return res.Result.(*T), res.Err
	}
	return nil, res.Err
}

// GetMulti 没有数据的时候返回空切片而不是 ErrNoRows
func (s *Selector[T]) GetMulti(ctx context.Context) ([]*T, error) {
	if err := s.initModel(); err != nil {
		return nil, err
	}
	res := getMulti[T](ctx, s.sess, s.core, &QueryContext{
		Type:    "SELECT",
		Builder: s,
		Model:   s.model,
	})
	if res.Result != nil {
		return res.Result.([]*T), res.Err
	}
	return nil, res.Err
}

// Count 忽略列、排序和分页，统计满足条件的行数
func (s *Selector[T]) Count(ctx context.Context) (int64, error) {
	if err := s.initModel(); err != nil {
		return 0, err
	}
	cs := &Selector[T]{
		builder: builder{
			core:   s.core,
			quoter: s.quoter,
		},
		columns:  []Selectable{Raw("COUNT(*)")},
		where:    s.where,
		unscoped: s.unscoped,
		sess:     s.sess,
	}
	cs.model = s.model
	res := count(ctx, s.sess, cs.core, &QueryContext{
		Type:    "COUNT",
		Builder: cs,
		Model:   cs.model,
	})
	if res.Err != nil {
		return 0, res.Err
	}
	return res.Result.(int64), nil
}
