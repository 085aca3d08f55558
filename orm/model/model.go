package model

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/sync/singleflight"

	"ormfilter/orm/internal/errs"
)

const (
	tagKeyColumn     = "column"
	tagKeySoftDelete = "soft_delete"
)

type Registry interface {
	Get(val any) (*Model, error)
	Register(val any, opts ...ModelOpt) (*Model, error)
}

type Model struct {
	TableName string
	Fields    []*Field
	// 字段名到字段的映射
	FieldMap map[string]*Field
	// 列名到字段的映射
	ColumnMap map[string]*Field
	// SoftDelete 软删除列，nil 表示模型不支持软删除
	SoftDelete *Field
}

// Lookup finds a field by Go name first and by column name second.
func (m *Model) Lookup(name string) (*Field, bool) {
	if fd, ok := m.FieldMap[name]; ok {
		return fd, true
	}
	fd, ok := m.ColumnMap[name]
	return fd, ok
}

type ModelOpt func(m *Model) error

type Field struct {
	ColName string
	Type    reflect.Type
	GoName  string
	// 字段相对于结构体本身的偏移量
	Offset uintptr
}

type registry struct {
	models sync.Map
	g      singleflight.Group
}

func NewRegistry() Registry {
	return &registry{}
}

func (r *registry) Get(val any) (*Model, error) {
	typ := reflect.TypeOf(val)
	if m, ok := r.models.Load(typ); ok {
		return m.(*Model), nil
	}
	// 并发首次解析同一类型时只解析一次
	m, err, _ := r.g.Do(fmt.Sprintf("%p", typ), func() (any, error) {
		if m, ok := r.models.Load(typ); ok {
			return m, nil
		}
		return r.Register(val)
	})
	if err != nil {
		return nil, err
	}
	return m.(*Model), nil
}

// Register 只接受指向结构体的一级指针
func (r *registry) Register(entity any, opts ...ModelOpt) (*Model, error) {
	typ := reflect.TypeOf(entity)
	if typ == nil || typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct {
		return nil, errs.ErrPointOnly
	}
	elemTyp := typ.Elem()
	numField := elemTyp.NumField()
	fieldMap := make(map[string]*Field, numField)
	columnMap := make(map[string]*Field, numField)
	fields := make([]*Field, 0, numField)
	var softDelete *Field
	for i := 0; i < numField; i++ {
		fd := elemTyp.Field(i)
		pair, err := r.parseTag(fd.Tag)
		if err != nil {
			return nil, err
		}
		colName := pair[tagKeyColumn]
		if colName == "" {
			colName = UnderscoreName(fd.Name)
		}
		fdMeta := &Field{
			ColName: colName,
			Type:    fd.Type,
			GoName:  fd.Name,
			Offset:  fd.Offset,
		}
		if v, ok := pair[tagKeySoftDelete]; ok {
			on, err := strconv.ParseBool(v)
			if err != nil {
				return nil, errs.NewErrInvalidTagContent(tagKeySoftDelete + "=" + v)
			}
			if on {
				softDelete = fdMeta
			}
		}
		fieldMap[fd.Name] = fdMeta
		columnMap[colName] = fdMeta
		fields = append(fields, fdMeta)
	}
	var tableName string
	if tbl, ok := entity.(TableName); ok {
		tableName = tbl.TableName()
	}
	if tableName == "" {
		tableName = UnderscoreName(elemTyp.Name())
	}

	res := &Model{
		TableName:  tableName,
		FieldMap:   fieldMap,
		ColumnMap:  columnMap,
		Fields:     fields,
		SoftDelete: softDelete,
	}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	r.models.Store(typ, res)
	return res, nil
}

func WithColumnName(field string, columnName string) ModelOpt {
	return func(m *Model) error {
		fd, ok := m.FieldMap[field]
		if !ok {
			return errs.NewUnknownField(field)
		}
		delete(m.ColumnMap, fd.ColName)
		fd.ColName = columnName
		m.ColumnMap[columnName] = fd
		return nil
	}
}

func WithTableName(tableName string) ModelOpt {
	return func(m *Model) error {
		m.TableName = tableName
		return nil
	}
}

// WithSoftDelete marks field as the soft delete column.
func WithSoftDelete(field string) ModelOpt {
	return func(m *Model) error {
		fd, ok := m.FieldMap[field]
		if !ok {
			return errs.NewUnknownField(field)
		}
		m.SoftDelete = fd
		return nil
	}
}

// parseTag 解析 `orm:"column=id,soft_delete=true"`
func (r *registry) parseTag(tag reflect.StructTag) (map[string]string, error) {
	ormTag, ok := tag.Lookup("orm")
	if !ok {
		return map[string]string{}, nil
	}
	pairs := strings.Split(ormTag, ",")
	res := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		segs := strings.Split(pair, "=")
		if len(segs) != 2 {
			return nil, errs.NewErrInvalidTagContent(pair)
		}
		res[segs[0]] = segs[1]
	}
	return res, nil
}

// UnderscoreName 是默认的列名和表名规则，FirstName 变成 first_name
func UnderscoreName(name string) string {
	var buf []byte
	for i, v := range name {
		if unicode.IsUpper(v) {
			if i != 0 {
				buf = append(buf, '_')
			}
			buf = append(buf, byte(unicode.ToLower(v)))
		} else {
			buf = append(buf, byte(v))
		}
	}
	return string(buf)
}

type TableName interface {
	TableName() string
}
