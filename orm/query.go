package orm

import "context"

// Query 是构造好的 SQL 和参数
type Query struct {
	SQL  string
	Args []any
}

type QueryBuilder interface {
	Build() (*Query, error)
}

// Querier 用于 SELECT 语句
type Querier[T any] interface {
	Get(ctx context.Context) (*T, error)
	GetMulti(ctx context.Context) ([]*T, error)
}

// Executor 用于 INSERT, UPDATE, DELETE
type Executor interface {
	Exec(ctx context.Context) Result
}
