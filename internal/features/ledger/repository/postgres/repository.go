package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	platform "loyalty-raffle-backend/internal/platform/postgres"

	"loyalty-raffle-backend/internal/features/ledger/models"
	"loyalty-raffle-backend/internal/features/ledger/repository"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	db     *sql.DB
	client *platform.Client
}

func NewPostgresRepository(client *platform.Client) repository.LedgerRepository {
	return &postgresRepository{db: client.GetDB(), client: client}
}

func (r *postgresRepository) BeginTx(ctx context.Context) (repository.Transaction, error) {
	return r.client.BeginTx(ctx)
}

func (r *postgresRepository) AppendTx(ctx context.Context, tx repository.Transaction, t *models.LedgerTransaction) error {
	ptx, ok := tx.(*platform.Transaction)
	if !ok {
		return fmt.Errorf("unexpected transaction type %T", tx)
	}
	sqlTx := ptx.Tx()

	// Applying the delta first takes the row lock on the account, so two
	// concurrent redeems against the same balance serialize here instead of
	// both passing a stale check.
	res, err := sqlTx.ExecContext(ctx, `
		UPDATE accounts
		SET points_balance = points_balance + $2, updated_at = NOW()
		WHERE id = $1 AND points_balance + $2 >= 0
	`, t.AccountID, t.PointsDelta)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		var exists bool
		if err := sqlTx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, t.AccountID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check account: %w", err)
		}
		if !exists {
			return repository.ErrAccountNotFound
		}
		return repository.ErrInsufficientBalance
	}

	_, err = sqlTx.ExecContext(ctx, `
		INSERT INTO ledger_transactions (id, account_id, points_delta, kind, action, description, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
	`, t.ID, t.AccountID, t.PointsDelta, t.Kind, t.Action, t.Description, t.ReferenceID, t.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return repository.ErrDuplicateReference
		}
		return fmt.Errorf("failed to insert ledger transaction: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByReference(ctx context.Context, accountID, action, referenceID string) (*models.LedgerTransaction, error) {
	query := `
		SELECT id, account_id, points_delta, kind, action, description, COALESCE(reference_id, ''), created_at
		FROM ledger_transactions
		WHERE account_id = $1 AND action = $2 AND reference_id = $3
	`
	var t models.LedgerTransaction
	err := r.db.QueryRowContext(ctx, query, accountID, action, referenceID).Scan(
		&t.ID, &t.AccountID, &t.PointsDelta, &t.Kind, &t.Action, &t.Description, &t.ReferenceID, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction by reference: %w", err)
	}

	return &t, nil
}

func (r *postgresRepository) ListByAccount(ctx context.Context, accountID, kind string, limit, offset int) ([]models.LedgerTransaction, error) {
	query := `
		SELECT id, account_id, points_delta, kind, action, description, COALESCE(reference_id, ''), created_at
		FROM ledger_transactions
		WHERE account_id = $1 AND ($2 = '' OR kind = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.QueryContext(ctx, query, accountID, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.LedgerTransaction
	for rows.Next() {
		var t models.LedgerTransaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.PointsDelta, &t.Kind, &t.Action,
			&t.Description, &t.ReferenceID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

func (r *postgresRepository) MonthlyStats(ctx context.Context, accountID, period string) (*models.MonthlyStats, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN kind = 'earn' THEN points_delta ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'redeem' THEN -points_delta ELSE 0 END), 0)
		FROM ledger_transactions
		WHERE account_id = $1 AND to_char(created_at, 'YYYY-MM') = $2
	`
	var stats models.MonthlyStats
	if err := r.db.QueryRowContext(ctx, query, accountID, period).Scan(&stats.Earned, &stats.Spent); err != nil {
		return nil, fmt.Errorf("failed to compute monthly stats: %w", err)
	}
	stats.Net = stats.Earned - stats.Spent

	return &stats, nil
}
