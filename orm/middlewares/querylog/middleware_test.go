package querylog

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ormfilter/orm"
)

func TestMiddlewareBuilder_Build(t *testing.T) {
	var query string
	var args []any
	m := NewMiddlewareBuilder().LogFunc(func(q string, a []any) {
		query = q
		args = a
	})
	db, err := orm.Open("sqlite3", "file:test.db?cache=shared&mode=memory", orm.DBWithMiddleware(m.Build()))
	require.NoError(t, err)

	_, _ = orm.NewSelector[TestModel](db).Where(orm.C("Id").Eq(10)).Get(context.Background())
	assert.Equal(t, "SELECT * FROM `test_model` WHERE `id` = ?;", query)
	assert.Equal(t, []any{10}, args)

	orm.NewInserter[TestModel](db).Values(&TestModel{Id: 18}).Exec(context.Background())
	assert.Equal(t, "INSERT INTO `test_model`(`id`,`first_name`,`age`,`last_name`) VALUES (?,?,?,?);", query)
	assert.Equal(t, []any{int64(18), "", int8(0), (*sql.NullString)(nil)}, args)
}

func TestMiddlewareBuilder_Logger(t *testing.T) {
	buf := &bytes.Buffer{}
	m := NewMiddlewareBuilder().Logger(zerolog.New(buf))
	db, err := orm.Open("sqlite3", "file:test.db?cache=shared&mode=memory", orm.DBWithMiddleware(m.Build()))
	require.NoError(t, err)

	_, _ = orm.NewSelector[TestModel](db).Where(orm.C("Age").Gt(18)).GetMulti(context.Background())
	assert.JSONEq(t, `{"level":"debug","sql":"SELECT * FROM `+"`test_model` WHERE `age` > ?;"+`","args":[18],"message":"orm: query"}`, buf.String())
}

func TestMiddlewareBuilder_BuildError(t *testing.T) {
	called := false
	m := NewMiddlewareBuilder().LogFunc(func(q string, a []any) {
		called = true
	})
	db, err := orm.Open("sqlite3", "file:test.db?cache=shared&mode=memory", orm.DBWithMiddleware(m.Build()))
	require.NoError(t, err)

	_, err = orm.NewSelector[TestModel](db).Where(orm.C("Nickname").Eq(1)).Get(context.Background())
	assert.Error(t, err)
	assert.False(t, called)
}

type TestModel struct {
	Id        int64
	FirstName string
	Age       int8
	LastName  *sql.NullString
}
