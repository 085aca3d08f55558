package valuer

import (
	"database/sql"
	"reflect"

	"ormfilter/orm/internal/errs"
	"ormfilter/orm/model"
)

type reflectValue struct {
	model *model.Model
	// 对应于 T 的指针指向的值
	val reflect.Value
}

var _ Creator = NewReflectValue

func NewReflectValue(model *model.Model, val any) Value {
	return reflectValue{
		model: model,
		val:   reflect.ValueOf(val).Elem(),
	}
}

func (r reflectValue) Field(name string) (any, error) {
	if _, ok := r.model.FieldMap[name]; !ok {
		return nil, errs.NewUnknownField(name)
	}
	return r.val.FieldByName(name).Interface(), nil
}

func (r reflectValue) SetColumns(rows *sql.Rows) error {
	cs, err := rows.Columns()
	if err != nil {
		return err
	}
	vals := make([]any, 0, len(cs))
	valElems := make([]reflect.Value, 0, len(cs))
	fields := make([]*model.Field, 0, len(cs))
	for _, c := range cs {
		fd, ok := r.model.ColumnMap[c]
		if !ok {
			return errs.NewUnknownColumn(c)
		}
		// fd.Type 是 int 那么 val 是 *int
		val := reflect.New(fd.Type)
		vals = append(vals, val.Interface())
		valElems = append(valElems, val.Elem())
		fields = append(fields, fd)
	}
	if err = rows.Scan(vals...); err != nil {
		return err
	}
	for i, fd := range fields {
		r.val.FieldByName(fd.GoName).Set(valElems[i])
	}
	return nil
}
