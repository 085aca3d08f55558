package orm

import (
	"database/sql"

	"ormfilter/orm/internal/errs"
)

// ErrNoRows 和 sql.ErrNoRows 语义一致
var ErrNoRows = errs.ErrNoRows

type Result struct {
	err error
	res sql.Result
}

func (r Result) Err() error {
	return r.err
}

func (r Result) LastInsertId() (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.res.LastInsertId()
}

func (r Result) RowsAffected() (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.res.RowsAffected()
}
