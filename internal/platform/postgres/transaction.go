package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Transaction wraps *sql.Tx so repository packages can share one unit of work.
// Operations that must be atomic across features (a ledger debit paired with a
// raffle entry upsert, a winner insert paired with the bonus award) run against
// the same Transaction and commit together.
type Transaction struct {
	tx *sql.Tx
}

func (t *Transaction) Commit() error {
	return t.tx.Commit()
}

func (t *Transaction) Rollback() error {
	return t.tx.Rollback()
}

// Tx exposes the underlying *sql.Tx to repository implementations.
func (t *Transaction) Tx() *sql.Tx {
	return t.tx
}

func (c *Client) BeginTx(ctx context.Context) (*Transaction, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &Transaction{tx: tx}, nil
}
