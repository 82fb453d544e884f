package repository

import (
	"context"
	"errors"

	"loyalty-raffle-backend/internal/features/account/models"
	ledgerrepo "loyalty-raffle-backend/internal/features/ledger/repository"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)

type AccountRepository interface {
	// CreateTx joins an existing transaction so the signup insert commits
	// together with its welcome bonus.
	CreateTx(ctx context.Context, tx ledgerrepo.Transaction, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}
