package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"loyalty-raffle-backend/internal/common/logger"
	"loyalty-raffle-backend/internal/features/account/models"
	"loyalty-raffle-backend/internal/features/account/repository"
	ledgermodels "loyalty-raffle-backend/internal/features/ledger/models"
	ledgerservice "loyalty-raffle-backend/internal/features/ledger/service"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)

type AccountService interface {
	Create(ctx context.Context, input *models.AccountCreate) (*models.AccountResponse, error)
	Get(ctx context.Context, id string) (*models.AccountResponse, error)
}

type accountService struct {
	repo      repository.AccountRepository
	ledgerSvc ledgerservice.LedgerService
}

func NewAccountService(repo repository.AccountRepository, ledgerSvc ledgerservice.LedgerService) AccountService {
	return &accountService{
		repo:      repo,
		ledgerSvc: ledgerSvc,
	}
}

func (s *accountService) Create(ctx context.Context, input *models.AccountCreate) (*models.AccountResponse, error) {
	now := time.Now()
	account := &models.Account{
		ID:          uuid.New().String(),
		Username:    input.Username,
		Email:       input.Email,
		CountryCode: input.CountryCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if existing, err := s.repo.GetByUsername(ctx, input.Username); err == nil && existing != nil {
		return nil, ErrAccountExists
	} else if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	// The insert and the welcome bonus commit together. A failed bonus rolls
	// the account back, so no account ever exists without its bonus.
	tx, err := s.ledgerSvc.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.repo.CreateTx(ctx, tx, account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return nil, ErrAccountExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// The bonus goes through the ledger so the balance stays a pure
	// projection of transactions. The account ID as reference makes retried
	// signups award at most once.
	_, err = s.ledgerSvc.EarnTx(ctx, tx, account.ID, 0, ledgermodels.ActionWelcomeBonus, "Welcome to the loyalty program!", account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to award welcome bonus: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit account creation: %w", err)
	}

	created, err := s.repo.GetByID(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("account_id", account.ID).
		Str("username", account.Username).
		Msg("Account created")

	return toAccountResponse(created), nil
}

func (s *accountService) Get(ctx context.Context, id string) (*models.AccountResponse, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return toAccountResponse(account), nil
}

func toAccountResponse(account *models.Account) *models.AccountResponse {
	return &models.AccountResponse{
		ID:            account.ID,
		Username:      account.Username,
		Email:         account.Email,
		CountryCode:   account.CountryCode,
		PointsBalance: account.PointsBalance,
		Tier:          TierFor(account.PointsBalance),
		CreatedAt:     account.CreatedAt,
	}
}
