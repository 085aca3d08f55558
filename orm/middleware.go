package orm

import (
	"context"

	"ormfilter/orm/model"
)

type QueryContext struct {
	// Type 标记查询类型，SELECT, COUNT, INSERT, RAW
	Type string
	// Builder 代表查询本身，需要转化到具体类型才能篡改查询
	Builder QueryBuilder
	Model   *model.Model
}

type QueryResult struct {
	// Result 在不同查询下类型不同
	// SELECT 可以是 *T 也可以是 []*T，COUNT 是 int64，其他是 Result
	Result any
	Err    error
}

type Handler func(ctx context.Context, qc *QueryContext) *QueryResult

type Middleware func(next Handler) Handler
