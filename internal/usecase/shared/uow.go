package shared

import (
	"context"

	"cavilia/internal/infra/db"
)

// TxRunner runs a function inside a database transaction, retrying
// serialization failures. Commands depend on this seam instead of the pool so
// the dispatch and booking flows stay testable.
type TxRunner interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
