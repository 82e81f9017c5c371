package fake

import (
	"context"

	"cavilia/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TxRunner executes the function directly against a stub DBTX, no database
// involved. Set Err to simulate a transaction that fails to open.
type TxRunner struct {
	Err error
	Tx  db.DBTX
}

func (r *TxRunner) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	if r.Err != nil {
		return r.Err
	}
	tx := r.Tx
	if tx == nil {
		tx = StubTx{}
	}
	return fn(ctx, tx)
}

// StubTx satisfies db.DBTX for tests whose repositories are mocked; its
// methods are never reached.
type StubTx struct{}

func (StubTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (StubTx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (StubTx) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}
