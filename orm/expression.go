package orm

// Expression 是一个标记接口，代表表达式
type Expression interface {
	expr()
}

// RawExpr 代表的是原生表达式，其中的 ? 按照方言替换成占位符
type RawExpr struct {
	raw  string
	args []any
}

func Raw(expr string, args ...any) RawExpr {
	return RawExpr{
		raw:  expr,
		args: args,
	}
}

func (r RawExpr) selectable() {}
func (r RawExpr) expr()       {}

func (r RawExpr) AsPredicate() Predicate {
	return Predicate{
		left: r,
	}
}
