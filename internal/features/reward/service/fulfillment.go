package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"loyalty-raffle-backend/internal/features/reward/models"
)

const (
	discountCodePrefix = "KISS"
	accessCodePrefix   = "KC"

	discountCodeValidity = 30 * 24 * time.Hour
)

// fulfill produces the reward-type specific payload handed back to the user.
// Discount codes are the only step that touches storage; the rest is computed.
func (s *rewardService) fulfill(ctx context.Context, reward models.Reward) (map[string]interface{}, error) {
	switch reward.Type {
	case models.RewardTypeDiscount:
		return s.fulfillDiscount(ctx, reward)
	case models.RewardTypePhysical:
		return map[string]interface{}{
			"shipment_status":    "preparing",
			"estimated_delivery": "10-14 business days from Seoul",
		}, nil
	case models.RewardTypeDigital, models.RewardTypeExperience:
		code, err := randomCode(accessCodePrefix, 8)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"access_code": code,
		}, nil
	default:
		return nil, fmt.Errorf("unknown reward type: %s", reward.Type)
	}
}

func (s *rewardService) fulfillDiscount(ctx context.Context, reward models.Reward) (map[string]interface{}, error) {
	code, err := randomCode(discountCodePrefix, 6)
	if err != nil {
		return nil, err
	}

	validUntil := time.Now().Add(discountCodeValidity).Format(time.RFC3339)
	if err := s.repo.CreateDiscountCode(ctx, code, float64(reward.EstimatedValue), validUntil); err != nil {
		return nil, fmt.Errorf("failed to store discount code: %w", err)
	}

	return map[string]interface{}{
		"discount_code": code,
		"valid_until":   validUntil,
	}, nil
}

func randomCode(prefix string, digits int) (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%s%0*d", prefix, digits, n), nil
}
