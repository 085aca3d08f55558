package querylog

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"ormfilter/orm"
)

type MiddlewareBuilder struct {
	logFunc func(query string, args []any)
}

// NewMiddlewareBuilder 默认用 zerolog 输出到标准错误
func NewMiddlewareBuilder() *MiddlewareBuilder {
	return (&MiddlewareBuilder{}).Logger(zerolog.New(os.Stderr).With().Timestamp().Logger())
}

// Logger 用 debug 级别记录 SQL 和参数
func (m *MiddlewareBuilder) Logger(logger zerolog.Logger) *MiddlewareBuilder {
	m.logFunc = func(query string, args []any) {
		logger.Debug().Str("sql", query).Interface("args", args).Msg("orm: query")
	}
	return m
}

func (m *MiddlewareBuilder) LogFunc(fn func(query string, args []any)) *MiddlewareBuilder {
	m.logFunc = fn
	return m
}

func (m *MiddlewareBuilder) Build() orm.Middleware {
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			q, err := qc.Builder.Build()
			if err != nil {
				return &orm.QueryResult{
					Err: err,
				}
			}
			m.logFunc(q.SQL, q.Args)
			return next(ctx, qc)
		}
	}
}
