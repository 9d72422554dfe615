package store

import (
	"context"
	"database/sql"
	"time"

	"personnel/pkg/platform/tx"
)

const defaultTxTimeout = 5 * time.Second

// PostgresTx runs units of work inside a database transaction carried on the
// context, so every store call inside fn joins it.
type PostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

// NewPostgresTx constructs a transaction runner. A zero timeout uses the
// default; the timeout only applies when the caller's context has no deadline.
func NewPostgresTx(db *sql.DB, timeout time.Duration) *PostgresTx {
	if timeout <= 0 {
		timeout = defaultTxTimeout
	}
	return &PostgresTx{db: db, timeout: timeout}
}

// RunInTx executes fn in a read-write transaction. Any error from fn rolls
// back every write made through the context.
func (t *PostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, nil, fn)
}

// RunInSnapshot executes fn in a read-only REPEATABLE READ transaction so all
// reads observe one snapshot.
func (t *PostgresTx) RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (t *PostgresTx) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// Nested calls join the transaction already on the context.
	if _, ok := tx.From(ctx); ok {
		return fn(ctx)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	sqlTx, err := t.db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = sqlTx.Rollback()
	}()

	if err := fn(tx.WithTx(ctx, sqlTx)); err != nil {
		return err
	}
	return sqlTx.Commit()
}
