package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"loyalty-raffle-backend/internal/common/cache"
	"loyalty-raffle-backend/internal/common/config"
	"loyalty-raffle-backend/internal/common/logger"
	accountrepo "loyalty-raffle-backend/internal/features/account/repository"
	ledgermodels "loyalty-raffle-backend/internal/features/ledger/models"
	ledgerservice "loyalty-raffle-backend/internal/features/ledger/service"
	"loyalty-raffle-backend/internal/features/raffle/models"
	"loyalty-raffle-backend/internal/features/raffle/repository"
)

const statsCacheTTL = 30 * time.Second

type RaffleService interface {
	PurchaseTickets(ctx context.Context, accountID string, count int) (*models.PurchaseResponse, error)
	Entries(ctx context.Context, accountID, period string) (*models.EntriesResponse, error)
	Current(ctx context.Context) (*models.CurrentRaffleResponse, error)
	Draw(ctx context.Context, period string) (*models.DrawResponse, error)
	Claim(ctx context.Context, accountID, winnerID string) (*models.RaffleWinner, error)
}

type raffleService struct {
	repo        repository.RaffleRepository
	ledgerSvc   ledgerservice.LedgerService
	accountRepo accountrepo.AccountRepository
	cache       *cache.CacheService
	cfg         *config.Config

	// Swapped for a deterministic source in tests.
	randIntn func(n int) int
}

func NewRaffleService(
	repo repository.RaffleRepository,
	ledgerSvc ledgerservice.LedgerService,
	accountRepo accountrepo.AccountRepository,
	cacheSvc *cache.CacheService,
	cfg *config.Config,
) RaffleService {
	return &raffleService{
		repo:        repo,
		ledgerSvc:   ledgerSvc,
		accountRepo: accountRepo,
		cache:       cacheSvc,
		cfg:         cfg,
		randIntn:    rand.Intn,
	}
}

// CurrentPeriod returns the calendar month tickets are currently sold for.
func CurrentPeriod() string {
	return time.Now().UTC().Format("2006-01")
}

// ValidatePeriod checks the YYYY-MM form.
func ValidatePeriod(period string) error {
	if _, err := time.Parse("2006-01", period); err != nil {
		return ErrInvalidPeriod
	}
	return nil
}

// drawingDate is the last day of the period's month.
func drawingDate(period string) time.Time {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return time.Time{}
	}
	return t.AddDate(0, 1, 0).Add(-24 * time.Hour)
}

func raffleInfo(period string) models.RaffleInfo {
	return models.RaffleInfo{
		Period:      period,
		DrawingDate: drawingDate(period),
		Prize: models.PrizeInfo{
			Name:           "5-Day Seoul Adventure Trip",
			Description:    "Round-trip flights, 4-night hotel, cultural tours, and $1,000 shopping budget",
			EstimatedValue: 3500,
			Includes: []string{
				"Round-trip flights to Seoul",
				"4 nights at 4-star Seoul hotel",
				"Guided K-culture tours (Gangnam, Hongdae, Myeongdong)",
				"$1,000 Korean shopping budget",
				"Traditional Korean cultural experiences",
				"K-beauty and K-fashion shopping tours",
				"Korean language basics course",
			},
		},
	}
}

func (s *raffleService) PurchaseTickets(ctx context.Context, accountID string, count int) (*models.PurchaseResponse, error) {
	if count < 1 || count > s.cfg.Loyalty.MaxTicketsPerOrder {
		return nil, ErrInvalidTicketCount
	}

	period := CurrentPeriod()
	cost := count * s.cfg.Loyalty.TicketPrice

	// Ledger debit and ticket credit commit together: a failed upsert rolls
	// the debit back, points are never lost on a half-finished purchase.
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	description := fmt.Sprintf("Purchased %d Seoul trip raffle tickets", count)
	if _, err := s.ledgerSvc.RedeemTx(ctx, tx, accountID, cost, ledgermodels.ActionRaffleTickets, description, ""); err != nil {
		return nil, err
	}

	total, err := s.repo.AddTicketsTx(ctx, tx, accountID, period, count)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, statsCacheKey(period)); err != nil {
			logger.Warn().Err(err).Str("period", period).Msg("Failed to invalidate raffle stats cache")
		}
	}

	remaining := 0
	if account, err := s.accountRepo.GetByID(ctx, accountID); err == nil {
		remaining = account.PointsBalance
	}

	logger.Info().
		Str("account_id", accountID).
		Str("period", period).
		Int("tickets", count).
		Int("points_spent", cost).
		Msg("Raffle tickets purchased")

	return &models.PurchaseResponse{
		TicketsPurchased: count,
		PointsSpent:      cost,
		TotalTickets:     total,
		RemainingPoints:  remaining,
	}, nil
}

func (s *raffleService) Entries(ctx context.Context, accountID, period string) (*models.EntriesResponse, error) {
	if period == "" {
		period = CurrentPeriod()
	}
	if err := ValidatePeriod(period); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetEntry(ctx, accountID, period)
	if err != nil {
		return nil, err
	}

	totalTickets, _, err := s.periodStats(ctx, period)
	if err != nil {
		return nil, err
	}

	userTickets := 0
	if entry != nil {
		userTickets = entry.TicketCount
	}

	odds := "0.00"
	if totalTickets > 0 {
		odds = fmt.Sprintf("%.2f", float64(userTickets)/float64(totalTickets)*100)
	}

	resp := &models.EntriesResponse{
		Period:       period,
		UserTickets:  userTickets,
		TotalTickets: totalTickets,
		Odds:         odds,
		Raffle:       raffleInfo(period),
	}

	winner, err := s.repo.GetWinnerForAccount(ctx, accountID, period)
	if err != nil {
		return nil, err
	}
	if winner != nil {
		resp.HasWon = true
		resp.Winner = &models.WinnerInfo{
			PrizeType:        winner.PrizeType,
			PrizeDescription: winner.PrizeDescription,
			Claimed:          winner.Claimed,
			ClaimedAt:        winner.ClaimedAt,
		}
	}

	return resp, nil
}

func (s *raffleService) Current(ctx context.Context) (*models.CurrentRaffleResponse, error) {
	period := CurrentPeriod()

	totalTickets, participants, err := s.periodStats(ctx, period)
	if err != nil {
		return nil, err
	}

	winner, err := s.repo.GetWinnerByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	return &models.CurrentRaffleResponse{
		Period:       period,
		TotalTickets: totalTickets,
		Participants: participants,
		Drawn:        winner != nil,
		Raffle:       raffleInfo(period),
	}, nil
}

func (s *raffleService) Claim(ctx context.Context, accountID, winnerID string) (*models.RaffleWinner, error) {
	winner, err := s.repo.MarkClaimed(ctx, winnerID, accountID)
	if err != nil {
		if err == repository.ErrWinnerNotFound {
			return nil, ErrNotClaimable
		}
		return nil, err
	}

	logger.Info().
		Str("winner_id", winner.ID).
		Str("account_id", accountID).
		Str("period", winner.Period).
		Msg("Raffle prize claimed")

	return winner, nil
}

type cachedStats struct {
	TotalTickets int `json:"total_tickets"`
	Participants int `json:"participants"`
}

const statsCachePattern = "raffle:stats:*"

func statsCacheKey(period string) string {
	return "raffle:stats:" + period
}

func (s *raffleService) periodStats(ctx context.Context, period string) (int, int, error) {
	if s.cache != nil {
		var stats cachedStats
		if err := s.cache.Get(ctx, statsCacheKey(period), &stats); err == nil {
			return stats.TotalTickets, stats.Participants, nil
		}
	}

	totalTickets, participants, err := s.repo.PeriodStats(ctx, period)
	if err != nil {
		return 0, 0, err
	}

	if s.cache != nil {
		stats := cachedStats{TotalTickets: totalTickets, Participants: participants}
		if err := s.cache.Set(ctx, statsCacheKey(period), stats, statsCacheTTL); err != nil {
			logger.Warn().Err(err).Str("period", period).Msg("Failed to cache raffle stats")
		}
	}

	return totalTickets, participants, nil
}
