package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"loyalty-raffle-backend/internal/features/account/models"
	"loyalty-raffle-backend/internal/features/account/repository"
	ledgerrepo "loyalty-raffle-backend/internal/features/ledger/repository"
	platform "loyalty-raffle-backend/internal/platform/postgres"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.AccountRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateTx(ctx context.Context, tx ledgerrepo.Transaction, account *models.Account) error {
	ptx, ok := tx.(*platform.Transaction)
	if !ok {
		return fmt.Errorf("unexpected transaction type %T", tx)
	}

	query := `
		INSERT INTO accounts (id, username, email, country_code, points_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := ptx.Tx().ExecContext(ctx, query,
		account.ID, account.Username, account.Email, account.CountryCode,
		account.PointsBalance, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return repository.ErrAccountExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `
		SELECT id, username, email, country_code, points_balance, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `
		SELECT id, username, email, country_code, points_balance, created_at, updated_at
		FROM accounts
		WHERE username = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

func (r *postgresRepository) scanOne(row *sql.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(&account.ID, &account.Username, &account.Email, &account.CountryCode,
		&account.PointsBalance, &account.CreatedAt, &account.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}
