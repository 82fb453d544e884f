package repository

import (
	"context"
	"errors"

	ledgerrepo "loyalty-raffle-backend/internal/features/ledger/repository"
	"loyalty-raffle-backend/internal/features/reward/models"
)

var ErrRedemptionNotFound = errors.New("redemption not found")

type RewardRepository interface {
	// CreateRedemptionTx inserts the pending redemption next to its ledger
	// debit so both commit or neither does.
	CreateRedemptionTx(ctx context.Context, tx ledgerrepo.Transaction, redemption *models.RewardRedemption) error

	// UpdateFulfillment moves a redemption to fulfilled or failed and stores
	// the fulfillment payload.
	UpdateFulfillment(ctx context.Context, redemptionID, status string, data map[string]interface{}) error

	// CreateDiscountCode registers a generated one-use discount code.
	CreateDiscountCode(ctx context.Context, code string, value float64, validUntil string) error

	GetByID(ctx context.Context, id string) (*models.RewardRedemption, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]models.RewardRedemption, error)
}
