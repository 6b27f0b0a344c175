package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

func init() {
	// go-ora registers itself as "oracle", which sqlx does not know; named queries must compile to :name.
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
