package orm

import "strconv"

var (
	DialectMySQL    Dialect = mysqlDialect{}
	DialectSQLite   Dialect = sqliteDialect{}
	DialectPostgres Dialect = postgresDialect{}
)

type Dialect interface {
	// quoter 解决引号问题，MySQL 是 `
	quoter() byte
	// bindVar 返回第 n 个参数的占位符，n 从 1 开始
	bindVar(n int) string
}

type standardSQL struct{}

func (s standardSQL) quoter() byte {
	return '"'
}

func (s standardSQL) bindVar(int) string {
	return "?"
}

type mysqlDialect struct {
	standardSQL
}

func (m mysqlDialect) quoter() byte {
	return '`'
}

type sqliteDialect struct {
	standardSQL
}

func (s sqliteDialect) quoter() byte {
	return '`'
}

type postgresDialect struct {
	standardSQL
}

func (p postgresDialect) bindVar(n int) string {
	return "$" + strconv.Itoa(n)
}
