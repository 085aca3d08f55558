package orm

import (
	"strings"

	"ormfilter/orm/internal/errs"
)

type builder struct {
	sb   strings.Builder
	args []any
	core
	quoter byte
}

// reset 允许同一个 builder 重复 Build
func (b *builder) reset() {
	b.sb = strings.Builder{}
	b.args = nil
}

func (b *builder) quote(name string) {
	b.sb.WriteByte(b.quoter)
	b.sb.WriteString(name)
	b.sb.WriteByte(b.quoter)
}

func (b *builder) buildColumn(c Column) error {
	fd, ok := b.model.Lookup(c.name)
	if !ok {
		return errs.NewUnknownField(c.name)
	}
	b.quote(fd.ColName)
	if c.alias != "" {
		b.sb.WriteString(" AS ")
		b.quote(c.alias)
	}
	return nil
}

// addArg 记录参数并写入占位符
func (b *builder) addArg(val any) {
	if b.args == nil {
		b.args = make([]any, 0, 8)
	}
	b.args = append(b.args, val)
	b.sb.WriteString(b.dialect.bindVar(len(b.args)))
}

// writeRaw 把原生表达式中的 ? 逐个替换成方言的占位符
func (b *builder) writeRaw(raw string, args []any) {
	idx := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '?' && idx < len(args) {
			b.addArg(args[idx])
			idx++
			continue
		}
		b.sb.WriteByte(raw[i])
	}
}

func (b *builder) buildPredicates(ps []Predicate) error {
	p := ps[0]
	for i := 1; i < len(ps); i++ {
		p = p.And(ps[i])
	}
	return b.buildExpression(p)
}

func (b *builder) buildExpression(expr Expression) error {
	switch exp := expr.(type) {
	case nil:
	case Predicate:
		if err := b.buildSubExpression(exp.left); err != nil {
			return err
		}
		if exp.op != "" {
			if exp.left != nil {
				b.sb.WriteByte(' ')
			}
			b.sb.WriteString(exp.op.String())
			if exp.right != nil {
				b.sb.WriteByte(' ')
			}
		}
		return b.buildSubExpression(exp.right)
	case Column:
		// 条件里面不需要别名
		exp.alias = ""
		return b.buildColumn(exp)
	case RawExpr:
		b.sb.WriteByte('(')
		b.writeRaw(exp.raw, exp.args)
		b.sb.WriteByte(')')
	case value:
		b.addArg(exp.val)
	case values:
		b.sb.WriteByte('(')
		for i, v := range exp.vals {
			if i > 0 {
				b.sb.WriteByte(',')
			}
			b.addArg(v)
		}
		b.sb.WriteByte(')')
	default:
		return errs.NewUnsupportedExpression(exp)
	}
	return nil
}

// buildSubExpression 子谓词需要加括号
func (b *builder) buildSubExpression(expr Expression) error {
	_, ok := expr.(Predicate)
	if ok {
		b.sb.WriteByte('(')
	}
	if err := b.buildExpression(expr); err != nil {
		return err
	}
	if ok {
		b.sb.WriteByte(')')
	}
	return nil
}
