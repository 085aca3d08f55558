package orm

// Column 可以是 Go 字段名，也可以是列名
type Column struct {
	name  string
	alias string
}

func C(name string) Column {
	return Column{
		name: name,
	}
}

// As 不可变设计，返回新的 Column
func (c Column) As(alias string) Column {
	return Column{
		name:  c.name,
		alias: alias,
	}
}

func (c Column) Eq(arg any) Predicate {
	return c.binary(opEq, arg)
}

func (c Column) NotEq(arg any) Predicate {
	return c.binary(opNotEq, arg)
}

func (c Column) Lt(arg any) Predicate {
	return c.binary(opLT, arg)
}

func (c Column) Lte(arg any) Predicate {
	return c.binary(opLTE, arg)
}

func (c Column) Gt(arg any) Predicate {
	return c.binary(opGT, arg)
}

func (c Column) Gte(arg any) Predicate {
	return c.binary(opGTE, arg)
}

func (c Column) Like(pattern string) Predicate {
	return c.binary(opLike, pattern)
}

// In 空列表永远为假
func (c Column) In(args ...any) Predicate {
	if len(args) == 0 {
		return Raw("1 = 0").AsPredicate()
	}
	return Predicate{
		left:  c,
		op:    opIn,
		right: values{vals: args},
	}
}

func (c Column) IsNull() Predicate {
	return Predicate{
		left: c,
		op:   opIsNull,
	}
}

func (c Column) binary(op op, arg any) Predicate {
	return Predicate{
		left:  c,
		op:    op,
		right: valueOf(arg),
	}
}

func valueOf(arg any) Expression {
	switch val := arg.(type) {
	case Expression:
		return val
	default:
		return value{val: val}
	}
}

func (c Column) expr()       {}
func (c Column) selectable() {}
