package prometheus

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ormfilter/orm"
)

func TestMiddlewareBuilder_Build(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MiddlewareBuilder{
		Namespace:  "ormfilter",
		Subsystem:  "orm",
		Name:       "query_duration",
		Help:       "query duration in milliseconds",
		Registerer: reg,
	}
	db, err := orm.Open("sqlite3", "file:test.db?cache=shared&mode=memory", orm.DBWithMiddleware(m.Build()))
	require.NoError(t, err)

	_, _ = orm.NewSelector[TestModel](db).Where(orm.C("Id").Eq(1)).GetMulti(context.Background())
	_, _ = orm.NewSelector[TestModel](db).Count(context.Background())

	n, err := testutil.GatherAndCount(reg, "ormfilter_orm_query_duration")
	require.NoError(t, err)
	// SELECT 和 COUNT 各一个序列
	assert.Equal(t, 2, n)
}

func TestMiddlewareBuilder_DuplicateRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MiddlewareBuilder{Name: "dup", Help: "dup", Registerer: reg}
	m.Build()
	assert.Panics(t, func() {
		m.Build()
	})
}

type TestModel struct {
	Id   int64
	Name string
}
