package slowquery

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"ormfilter/orm"
)

type MiddlewareBuilder struct {
	// 慢查询阈值
	threshold time.Duration
	logFunc   func(query string, args []any, duration time.Duration)
}

func NewMiddlewareBuilder(threshold time.Duration) *MiddlewareBuilder {
	m := &MiddlewareBuilder{
		threshold: threshold,
	}
	return m.Logger(zerolog.New(os.Stderr).With().Timestamp().Logger())
}

func (m *MiddlewareBuilder) Logger(logger zerolog.Logger) *MiddlewareBuilder {
	m.logFunc = func(query string, args []any, duration time.Duration) {
		logger.Warn().
			Str("sql", query).
			Interface("args", args).
			Dur("duration", duration).
			Msg("orm: slow query")
	}
	return m
}

func (m *MiddlewareBuilder) LogFunc(fn func(query string, args []any, duration time.Duration)) *MiddlewareBuilder {
	m.logFunc = fn
	return m
}

func (m *MiddlewareBuilder) Build() orm.Middleware {
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			startTime := time.Now()
			defer func() {
				duration := time.Since(startTime)
				if duration < m.threshold {
					return
				}
				q, err := qc.Builder.Build()
				if err == nil {
					m.logFunc(q.SQL, q.Args, duration)
				}
			}()
			return next(ctx, qc)
		}
	}
}
