package repository

import (
	"context"
	"errors"

	"loyalty-raffle-backend/internal/features/ledger/models"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDuplicateReference  = errors.New("duplicate reference for action")
	ErrAccountNotFound     = errors.New("account not found")
)

// Transaction is one atomic unit of work. Repositories of other features accept
// it so their writes commit together with the ledger's balance mutation.
type Transaction interface {
	Commit() error
	Rollback() error
}

// LedgerRepository appends immutable transactions and keeps the denormalized
// account balance in step within the same database transaction.
type LedgerRepository interface {
	BeginTx(ctx context.Context) (Transaction, error)

	// AppendTx inserts the transaction row and applies PointsDelta to the
	// account balance. For redeems the balance check and decrement are a
	// single conditional update; ErrInsufficientBalance means nothing was
	// written. ErrDuplicateReference means a transaction with the same
	// (account, action, reference) already exists.
	AppendTx(ctx context.Context, tx Transaction, t *models.LedgerTransaction) error

	FindByReference(ctx context.Context, accountID, action, referenceID string) (*models.LedgerTransaction, error)
	ListByAccount(ctx context.Context, accountID, kind string, limit, offset int) ([]models.LedgerTransaction, error)
	MonthlyStats(ctx context.Context, accountID, period string) (*models.MonthlyStats, error)
}
