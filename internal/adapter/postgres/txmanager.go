package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxBeginner starts transactions. Implemented by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// TxManager manages database transactions using the context pattern.
// A RunInTx call inside a callback joins the outer transaction instead of
// opening a second one; the outer call owns commit and rollback.
type TxManager struct {
	db TxBeginner
}

// NewTxManager creates a new TxManager.
func NewTxManager(db TxBeginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a Read Committed transaction.
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}
	return m.run(ctx, func(ctx context.Context) (pgx.Tx, error) {
		return m.db.Begin(ctx)
	}, fn)
}

// RunInTxSerializable executes fn within a SERIALIZABLE transaction.
// Serialization failures surface from fn or commit as domain.ErrConflict
// through MapError. Joining an outer transaction is refused because its
// isolation level cannot be raised.
func (m *TxManager) RunInTxSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fmt.Errorf("serializable transaction requested inside an open transaction")
	}
	return m.run(ctx, func(ctx context.Context) (pgx.Tx, error) {
		return m.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	}, fn)
}

func (m *TxManager) run(
	ctx context.Context,
	begin func(ctx context.Context) (pgx.Tx, error),
	fn func(ctx context.Context) error,
) (err error) {
	tx, err := begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return MapError(err, "transaction", "commit")
	}

	return nil
}
