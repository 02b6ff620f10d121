package trm

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// ExtractTx returns the transaction bound to ctx, or nil when the caller
// runs outside of Manager.Do.
func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) error
}

type manager struct {
	db *sqlx.DB
}

func NewManager(db *sqlx.DB) Manager {
	return &manager{db: db}
}

func (m *manager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	return withTx(ctx, tx), tx, nil
}

// Do runs callback inside a transaction propagated through the context.
// Any error from the callback rolls the whole transaction back.
func (m *manager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	ctx, tx, err := m.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(ctx); err != nil {
		return err
	}
	return tx.Commit()
}
