package valuer

import (
	"database/sql"

	"ormfilter/orm/model"
)

// Value 是对结构体实例的封装
type Value interface {
	// Field 返回字段对应的值
	Field(name string) (any, error)
	// SetColumns 把当前行写入结构体
	SetColumns(rows *sql.Rows) error
}

type Creator func(model *model.Model, entity any) Value
