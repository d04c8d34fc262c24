package booking

import (
	"context"
	"database/sql"

	"github.com/vinender/fieldsy-scheduling-service/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works both with
// a plain *sql.DB and with the instrumented wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
