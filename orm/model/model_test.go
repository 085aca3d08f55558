package model

import (
	"database/sql"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ormfilter/orm/internal/errs"
)

func TestRegistry_Register(t *testing.T) {
	testCases := []struct {
		name      string
		entity    any
		wantModel *Model
		wantErr   error
	}{
		{
			name:    "struct",
			entity:  TestModel{},
			wantErr: errs.ErrPointOnly,
		},
		{
			name:    "map",
			entity:  map[string]string{},
			wantErr: errs.ErrPointOnly,
		},
		{
			name:    "nil",
			entity:  nil,
			wantErr: errs.ErrPointOnly,
		},
		{
			name:   "pointer",
			entity: &TestModel{},
			wantModel: &Model{
				TableName: "test_model",
				Fields: []*Field{
					{ColName: "id", GoName: "Id", Type: reflect.TypeOf(int64(0)), Offset: 0},
					{ColName: "first_name", GoName: "FirstName", Type: reflect.TypeOf(""), Offset: 8},
					{ColName: "age", GoName: "Age", Type: reflect.TypeOf(int8(0)), Offset: 24},
					{ColName: "last_name", GoName: "LastName", Type: reflect.TypeOf(&sql.NullString{}), Offset: 32},
				},
			},
		},
	}
	r := &registry{}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := r.Register(tc.entity)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			fillMaps(tc.wantModel)
			assert.EqualValues(t, tc.wantModel, m)
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	testCases := []struct {
		name      string
		entity    any
		wantModel *Model
		wantErr   error
	}{
		{
			name: "tag",
			entity: func() any {
				type TagTable struct {
					FirstName string `orm:"column=first_name_t"`
				}
				return &TagTable{}
			}(),
			wantModel: &Model{
				TableName: "tag_table",
				Fields: []*Field{
					{ColName: "first_name_t", GoName: "FirstName", Type: reflect.TypeOf("")},
				},
			},
		},
		{
			name: "empty column",
			entity: func() any {
				type TagTable struct {
					FirstName string `orm:"column="`
				}
				return &TagTable{}
			}(),
			wantModel: &Model{
				TableName: "tag_table",
				Fields: []*Field{
					{ColName: "first_name", GoName: "FirstName", Type: reflect.TypeOf("")},
				},
			},
		},
		{
			name: "column only",
			entity: func() any {
				type TagTable struct {
					FirstName string `orm:"column"`
				}
				return &TagTable{}
			}(),
			wantErr: errs.NewErrInvalidTagContent("column"),
		},
		{
			name: "soft delete",
			entity: func() any {
				type Post struct {
					Title     string
					DeletedAt sql.NullInt64 `orm:"column=removed_at,soft_delete=true"`
				}
				return &Post{}
			}(),
			wantModel: func() *Model {
				deleted := &Field{ColName: "removed_at", GoName: "DeletedAt", Type: reflect.TypeOf(sql.NullInt64{}), Offset: 16}
				return &Model{
					TableName: "post",
					Fields: []*Field{
						{ColName: "title", GoName: "Title", Type: reflect.TypeOf("")},
						deleted,
					},
					SoftDelete: deleted,
				}
			}(),
		},
		{
			name: "soft delete off",
			entity: func() any {
				type Post struct {
					DeletedAt sql.NullInt64 `orm:"soft_delete=false"`
				}
				return &Post{}
			}(),
			wantModel: &Model{
				TableName: "post",
				Fields: []*Field{
					{ColName: "deleted_at", GoName: "DeletedAt", Type: reflect.TypeOf(sql.NullInt64{})},
				},
			},
		},
		{
			name: "invalid soft delete",
			entity: func() any {
				type Post struct {
					DeletedAt sql.NullInt64 `orm:"soft_delete=maybe"`
				}
				return &Post{}
			}(),
			wantErr: errs.NewErrInvalidTagContent("soft_delete=maybe"),
		},
		{
			name:   "custom table name",
			entity: &CustomTableName{},
			wantModel: &Model{
				TableName: "custom_table_name_t",
				Fields: []*Field{
					{ColName: "first_name", GoName: "FirstName", Type: reflect.TypeOf("")},
				},
			},
		},
		{
			name:   "custom table name ptr",
			entity: &CustomTableNamePtr{},
			wantModel: &Model{
				TableName: "custom_table_name_ptr_t",
				Fields: []*Field{
					{ColName: "first_name", GoName: "FirstName", Type: reflect.TypeOf("")},
				},
			},
		},
	}
	r := NewRegistry()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := r.Get(tc.entity)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			fillMaps(tc.wantModel)
			assert.Equal(t, tc.wantModel, m)
			cache, ok := r.(*registry).models.Load(reflect.TypeOf(tc.entity))
			assert.True(t, ok)
			assert.Equal(t, tc.wantModel, cache)
		})
	}
}

func TestRegistry_GetConcurrent(t *testing.T) {
	r := NewRegistry()
	const n = 16
	res := make([]*Model, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := r.Get(&TestModel{})
			assert.NoError(t, err)
			res[i] = m
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		assert.Same(t, res[0], res[i])
	}
}

func TestModel_Lookup(t *testing.T) {
	r := NewRegistry()
	m, err := r.Get(&TestModel{})
	require.NoError(t, err)

	fd, ok := m.Lookup("FirstName")
	require.True(t, ok)
	assert.Equal(t, "first_name", fd.ColName)

	fd, ok = m.Lookup("first_name")
	require.True(t, ok)
	assert.Equal(t, "FirstName", fd.GoName)

	_, ok = m.Lookup("nickname")
	assert.False(t, ok)
}

func TestModelWithTableName(t *testing.T) {
	r := NewRegistry()
	m, err := r.Register(&TestModel{}, WithTableName("test_model_ttt"))
	require.NoError(t, err)
	assert.Equal(t, "test_model_ttt", m.TableName)
}

func TestModelWithColumnName(t *testing.T) {
	testCases := []struct {
		name        string
		field       string
		colName     string
		wantColName string
		wantErr     error
	}{
		{
			name:        "column name",
			field:       "FirstName",
			colName:     "first_name_ccc",
			wantColName: "first_name_ccc",
		},
		{
			name:    "invalid column name",
			field:   "XXX",
			colName: "first_name_ccc",
			wantErr: errs.NewUnknownField("XXX"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry()
			m, err := r.Register(&TestModel{}, WithColumnName(tc.field, tc.colName))
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			fd, ok := m.FieldMap[tc.field]
			require.True(t, ok)
			assert.Equal(t, tc.wantColName, fd.ColName)
			assert.Same(t, fd, m.ColumnMap[tc.wantColName])
			_, ok = m.ColumnMap["first_name"]
			assert.False(t, ok)
		})
	}
}

func TestModelWithSoftDelete(t *testing.T) {
	r := NewRegistry()
	m, err := r.Register(&TestModel{}, WithSoftDelete("LastName"))
	require.NoError(t, err)
	require.NotNil(t, m.SoftDelete)
	assert.Equal(t, "last_name", m.SoftDelete.ColName)

	_, err = r.Register(&TestModel{}, WithSoftDelete("XXX"))
	assert.Equal(t, errs.NewUnknownField("XXX"), err)
}

func fillMaps(m *Model) {
	m.FieldMap = make(map[string]*Field, len(m.Fields))
	m.ColumnMap = make(map[string]*Field, len(m.Fields))
	for _, f := range m.Fields {
		m.FieldMap[f.GoName] = f
		m.ColumnMap[f.ColName] = f
	}
}

type CustomTableName struct {
	FirstName string
}

func (c CustomTableName) TableName() string {
	return "custom_table_name_t"
}

type CustomTableNamePtr struct {
	FirstName string
}

func (c *CustomTableNamePtr) TableName() string {
	return "custom_table_name_ptr_t"
}

type TestModel struct {
	Id        int64
	FirstName string
	Age       int8
	LastName  *sql.NullString
}

func TestUnderscoreName(t *testing.T) {
	testCases := []struct {
		name    string
		srcStr  string
		wantStr string
	}{
		{name: "upper cases", srcStr: "ID", wantStr: "i_d"},
		{name: "camel", srcStr: "FirstName", wantStr: "first_name"},
		{name: "lower", srcStr: "age", wantStr: "age"},
		{name: "digits", srcStr: "Table1Name", wantStr: "table1_name"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantStr, UnderscoreName(tc.srcStr))
		})
	}
}
