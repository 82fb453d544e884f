package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"loyalty-raffle-backend/internal/common/logger"
	accountrepo "loyalty-raffle-backend/internal/features/account/repository"
	accountservice "loyalty-raffle-backend/internal/features/account/service"
	ledgermodels "loyalty-raffle-backend/internal/features/ledger/models"
	ledgerservice "loyalty-raffle-backend/internal/features/ledger/service"
	"loyalty-raffle-backend/internal/features/reward/models"
	"loyalty-raffle-backend/internal/features/reward/repository"
)

type RewardService interface {
	Catalog(ctx context.Context, category, userLevel, accountID string) ([]models.RewardWithAffordability, error)
	Redeem(ctx context.Context, accountID string, req *models.RedeemRequest) (*models.RedeemResponse, error)
	Redemptions(ctx context.Context, accountID string, page, limit int) ([]models.RewardRedemption, error)
}

type rewardService struct {
	repo        repository.RewardRepository
	ledgerSvc   ledgerservice.LedgerService
	accountRepo accountrepo.AccountRepository
}

func NewRewardService(repo repository.RewardRepository, ledgerSvc ledgerservice.LedgerService, accountRepo accountrepo.AccountRepository) RewardService {
	return &rewardService{
		repo:        repo,
		ledgerSvc:   ledgerSvc,
		accountRepo: accountRepo,
	}
}

func (s *rewardService) Catalog(ctx context.Context, category, userLevel, accountID string) ([]models.RewardWithAffordability, error) {
	points := 0
	if accountID != "" {
		if account, err := s.accountRepo.GetByID(ctx, accountID); err == nil {
			points = account.PointsBalance
		}
	}

	userRank := accountservice.TierRank(userLevel)

	result := make([]models.RewardWithAffordability, 0, len(rewardCatalog))
	for _, reward := range rewardCatalog {
		if category != "" && reward.Category != category {
			continue
		}
		if userRank >= 0 && accountservice.TierRank(reward.LevelRequired) > userRank {
			continue
		}

		item := models.RewardWithAffordability{
			Reward:     reward,
			Affordable: points >= reward.PointsCost,
		}
		if points < reward.PointsCost {
			item.PointsNeeded = reward.PointsCost - points
		}
		result = append(result, item)
	}

	return result, nil
}

func (s *rewardService) Redeem(ctx context.Context, accountID string, req *models.RedeemRequest) (*models.RedeemResponse, error) {
	reward, ok := findReward(req.RewardID)
	if !ok {
		return nil, ErrInvalidReward
	}

	// Input validation happens before any debit: a missing address is the
	// caller's mistake, not a balance problem, and must not move points.
	if reward.Type == models.RewardTypePhysical && req.ShippingAddress == nil {
		return nil, ErrMissingShippingAddress
	}

	now := time.Now()
	redemption := &models.RewardRedemption{
		ID:              uuid.New().String(),
		AccountID:       accountID,
		RewardID:        reward.ID,
		RewardName:      reward.Name,
		PointsCost:      reward.PointsCost,
		RewardType:      reward.Type,
		Status:          models.StatusPending,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	tx, err := s.ledgerSvc.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	description := fmt.Sprintf("Redeemed: %s", reward.Name)
	if _, err := s.ledgerSvc.RedeemTx(ctx, tx, accountID, reward.PointsCost,
		ledgermodels.ActionRewardRedemption, description, redemption.ID); err != nil {
		return nil, err
	}

	if err := s.repo.CreateRedemptionTx(ctx, tx, redemption); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	// The debit is committed. From here on failures must not lose the user's
	// points: the redemption is parked as failed for manual reconciliation.
	status := models.StatusFulfilled
	fulfillment, err := s.fulfill(ctx, reward)
	if err != nil {
		logger.Error().Err(err).
			Str("redemption_id", redemption.ID).
			Str("account_id", accountID).
			Str("reward_id", reward.ID).
			Msg("Fulfillment failed after debit, flagging for manual reconciliation")
		status = models.StatusFailed
		fulfillment = map[string]interface{}{"error": err.Error()}
	}

	if err := s.repo.UpdateFulfillment(ctx, redemption.ID, status, fulfillment); err != nil {
		logger.Error().Err(err).
			Str("redemption_id", redemption.ID).
			Msg("Failed to record fulfillment result")
		status = models.StatusFailed
	}

	remaining := 0
	if account, err := s.accountRepo.GetByID(ctx, accountID); err == nil {
		remaining = account.PointsBalance
	}

	logger.Info().
		Str("redemption_id", redemption.ID).
		Str("account_id", accountID).
		Str("reward_id", reward.ID).
		Str("status", status).
		Int("points_spent", reward.PointsCost).
		Msg("Reward redeemed")

	resp := &models.RedeemResponse{
		RedemptionID:    redemption.ID,
		PointsSpent:     reward.PointsCost,
		RemainingPoints: remaining,
		Status:          status,
		Reward:          reward,
	}
	if status == models.StatusFulfilled {
		resp.Fulfillment = fulfillment
	}

	return resp, nil
}

func (s *rewardService) Redemptions(ctx context.Context, accountID string, page, limit int) ([]models.RewardRedemption, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return s.repo.ListByAccount(ctx, accountID, limit, (page-1)*limit)
}
