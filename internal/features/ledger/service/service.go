package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"loyalty-raffle-backend/internal/common/logger"
	accountrepo "loyalty-raffle-backend/internal/features/account/repository"
	"loyalty-raffle-backend/internal/features/ledger/models"
	"loyalty-raffle-backend/internal/features/ledger/repository"
)

// LedgerService owns all point movements. Every earn and redeem is an immutable
// ledger transaction plus a balance mutation committed atomically. Operations
// carrying a reference ID are idempotent per (account, action, reference):
// replays return the original transaction ID without moving points again.
type LedgerService interface {
	Earn(ctx context.Context, accountID string, amount int, action, description, referenceID string) (string, error)
	Redeem(ctx context.Context, accountID string, amount int, action, description, referenceID string) (string, error)

	// EarnTx and RedeemTx join an existing transaction so other features can
	// pair a point movement with their own writes.
	EarnTx(ctx context.Context, tx repository.Transaction, accountID string, amount int, action, description, referenceID string) (string, error)
	RedeemTx(ctx context.Context, tx repository.Transaction, accountID string, amount int, action, description, referenceID string) (string, error)

	BeginTx(ctx context.Context) (repository.Transaction, error)
	Summary(ctx context.Context, accountID, kind string, page, limit int) (*models.PointsSummary, error)
}

type ledgerService struct {
	repo        repository.LedgerRepository
	accountRepo accountrepo.AccountRepository
}

func NewLedgerService(repo repository.LedgerRepository, accountRepo accountrepo.AccountRepository) LedgerService {
	return &ledgerService{
		repo:        repo,
		accountRepo: accountRepo,
	}
}

func (s *ledgerService) BeginTx(ctx context.Context) (repository.Transaction, error) {
	return s.repo.BeginTx(ctx)
}

func (s *ledgerService) Earn(ctx context.Context, accountID string, amount int, action, description, referenceID string) (string, error) {
	return s.append(ctx, accountID, amount, models.KindEarn, action, description, referenceID)
}

func (s *ledgerService) Redeem(ctx context.Context, accountID string, amount int, action, description, referenceID string) (string, error) {
	return s.append(ctx, accountID, amount, models.KindRedeem, action, description, referenceID)
}

func (s *ledgerService) EarnTx(ctx context.Context, tx repository.Transaction, accountID string, amount int, action, description, referenceID string) (string, error) {
	return s.appendTx(ctx, tx, accountID, amount, models.KindEarn, action, description, referenceID)
}

func (s *ledgerService) RedeemTx(ctx context.Context, tx repository.Transaction, accountID string, amount int, action, description, referenceID string) (string, error) {
	return s.appendTx(ctx, tx, accountID, amount, models.KindRedeem, action, description, referenceID)
}

func (s *ledgerService) append(ctx context.Context, accountID string, amount int, kind, action, description, referenceID string) (string, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := s.appendTx(ctx, tx, accountID, amount, kind, action, description, referenceID)
	if err != nil {
		// A replayed reference is not a failure: the original transaction
		// already moved the points, return its ID and write nothing.
		if errors.Is(err, repository.ErrDuplicateReference) {
			tx.Rollback()
			existing, findErr := s.repo.FindByReference(ctx, accountID, action, referenceID)
			if findErr != nil {
				return "", findErr
			}
			if existing != nil {
				logger.Debug().
					Str("account_id", accountID).
					Str("action", action).
					Str("reference_id", referenceID).
					Msg("Duplicate reference, returning existing transaction")
				return existing.ID, nil
			}
		}
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

func (s *ledgerService) appendTx(ctx context.Context, tx repository.Transaction, accountID string, amount int, kind, action, description, referenceID string) (string, error) {
	if amount == 0 {
		rate, ok := models.PointRates[action]
		if !ok {
			return "", ErrUnknownAction
		}
		amount = rate
	}
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	delta := amount
	if kind == models.KindRedeem {
		delta = -amount
	}

	t := &models.LedgerTransaction{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		PointsDelta: delta,
		Kind:        kind,
		Action:      action,
		Description: description,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.AppendTx(ctx, tx, t); err != nil {
		if errors.Is(err, repository.ErrInsufficientBalance) {
			current := 0
			if account, accErr := s.accountRepo.GetByID(ctx, accountID); accErr == nil {
				current = account.PointsBalance
			}
			return "", &InsufficientBalanceError{Required: amount, Current: current}
		}
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrAccountNotFound
		}
		return "", err
	}

	logger.Debug().
		Str("account_id", accountID).
		Str("kind", kind).
		Str("action", action).
		Int("points_delta", delta).
		Msg("Ledger transaction appended")

	return t.ID, nil
}

func (s *ledgerService) Summary(ctx context.Context, accountID, kind string, page, limit int) (*models.PointsSummary, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, accountrepo.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	transactions, err := s.repo.ListByAccount(ctx, accountID, kind, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	period := time.Now().Format("2006-01")
	stats, err := s.repo.MonthlyStats(ctx, accountID, period)
	if err != nil {
		return nil, err
	}

	return &models.PointsSummary{
		CurrentPoints: account.PointsBalance,
		MonthlyStats:  *stats,
		Transactions:  transactions,
	}, nil
}
