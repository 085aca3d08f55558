package orm

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"ormfilter/orm/internal/errs"
	"ormfilter/orm/internal/valuer"
	"ormfilter/orm/model"
)

type DBOption func(db *DB)

// DB 是 sql.DB 的装饰器
type DB struct {
	core
	db     *sql.DB
	logger zerolog.Logger
}

func Open(driver string, dataSourceName string, opts ...DBOption) (*DB, error) {
	db, err := sql.Open(driver, dataSourceName)
	if err != nil {
		return nil, err
	}
	return OpenDB(db, opts...)
}

func OpenDB(db *sql.DB, opts ...DBOption) (*DB, error) {
	res := &DB{
		core: core{
			r:       model.NewRegistry(),
			creator: valuer.NewUnsafeValue,
			dialect: DialectMySQL,
		},
		db:     db,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res, nil
}

func MustOpenDB(driver string, dataSourceName string, opts ...DBOption) *DB {
	res, err := Open(driver, dataSourceName, opts...)
	if err != nil {
		panic(err)
	}
	return res
}

// DBWithMiddleware 一次性设置所有 middleware
func DBWithMiddleware(mdls ...Middleware) DBOption {
	return func(db *DB) {
		db.mdls = mdls
	}
}

func DBWithDialect(dialect Dialect) DBOption {
	return func(db *DB) {
		db.dialect = dialect
	}
}

func DBWithReflect() DBOption {
	return func(db *DB) {
		db.creator = valuer.NewReflectValue
	}
}

func DBWithRegistry(r model.Registry) DBOption {
	return func(db *DB) {
		db.r = r
	}
}

func DBWithLogger(logger zerolog.Logger) DBOption {
	return func(db *DB) {
		db.logger = logger
	}
}

func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	tx, err := db.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{
		tx: tx,
		db: db,
	}, nil
}

type txKey struct{}

// BeginTxV2 复用 ctx 里面还没有结束的事务
//
//	ctx, tx, err := db.BeginTxV2(ctx, nil)
//	doSomething(ctx, tx)
func (db *DB) BeginTxV2(ctx context.Context, opts *sql.TxOptions) (context.Context, *Tx, error) {
	val := ctx.Value(txKey{})
	tx, ok := val.(*Tx)
	if ok && !tx.done {
		return ctx, tx, nil
	}
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	ctx = context.WithValue(ctx, txKey{}, tx)
	return ctx, tx, nil
}

// DoTx 在事务里执行 fn，fn 返回 error 或者 panic 的时候回滚
func (db *DB) DoTx(ctx context.Context,
	fn func(ctx context.Context, tx *Tx) error,
	opts *sql.TxOptions) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	panicked := true
	defer func() {
		if panicked || err != nil {
			if e := tx.Rollback(); e != nil {
				err = errs.NewErrFailedToRollbackTx(err, e, panicked)
			}
			return
		}
		err = tx.Commit()
	}()
	err = fn(ctx, tx)
	panicked = false
	return err
}

func (db *DB) getCore() core {
	return db.core
}

func (db *DB) queryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

func (db *DB) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// Wait 主动等待数据库启动
func (db *DB) Wait(ctx context.Context) error {
	err := db.db.PingContext(ctx)
	for errors.Is(err, driver.ErrBadConn) {
		db.logger.Info().Msg("orm: waiting for database")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
		err = db.db.PingContext(ctx)
	}
	return err
}

func (db *DB) Close() error {
	return db.db.Close()
}
