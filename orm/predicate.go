package orm

type op string

const (
	opEq     op = "="
	opNotEq  op = "<>"
	opLT     op = "<"
	opLTE    op = "<="
	opGT     op = ">"
	opGTE    op = ">="
	opLike   op = "LIKE"
	opIn     op = "IN"
	opIsNull op = "IS NULL"
	opNot    op = "NOT"
	opAnd    op = "AND"
	opOr     op = "OR"
)

func (o op) String() string {
	return string(o)
}

type Predicate struct {
	left  Expression
	op    op
	right Expression
}

// Not(C("name").Eq("Tom"))
func Not(p Predicate) Predicate {
	return Predicate{
		op:    opNot,
		right: p,
	}
}

// C("id").Eq(12).And(C("name").Eq("Tom"))
func (left Predicate) And(right Predicate) Predicate {
	return Predicate{
		left:  left,
		op:    opAnd,
		right: right,
	}
}

// C("id").Eq(12).Or(C("name").Eq("Tom"))
func (left Predicate) Or(right Predicate) Predicate {
	return Predicate{
		left:  left,
		op:    opOr,
		right: right,
	}
}

func (Predicate) expr() {}

type value struct {
	val any
}

func (value) expr() {}

// values 是 IN 的参数列表
type values struct {
	vals []any
}

func (values) expr() {}
