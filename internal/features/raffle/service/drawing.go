package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"loyalty-raffle-backend/internal/common/logger"
	ledgermodels "loyalty-raffle-backend/internal/features/ledger/models"
	"loyalty-raffle-backend/internal/features/raffle/models"
	"loyalty-raffle-backend/internal/features/raffle/repository"
)

const (
	prizeType        = "seoul_trip"
	prizeDescription = "5-Day Seoul Adventure Trip - Complete Korean culture experience"
)

// Draw selects the period's winner, once. Each ticket has equal probability:
// entries are laid out as cumulative weights (in account order, so the layout
// is reproducible) and a single uniform index into [0, totalTickets) is binary
// searched, never a materialized slot-per-ticket pool. The winner insert and
// the bonus award commit in one transaction; the unique constraint on period
// turns a concurrent second draw into ErrAlreadyDrawn instead of a second prize.
func (s *raffleService) Draw(ctx context.Context, period string) (*models.DrawResponse, error) {
	if err := ValidatePeriod(period); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetWinnerByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyDrawn
	}

	entries, err := s.repo.ListEntries(ctx, period)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	winnerEntry, totalTickets := s.pickWeighted(entries)

	winner := &models.RaffleWinner{
		ID:               uuid.New().String(),
		AccountID:        winnerEntry.AccountID,
		Period:           period,
		PrizeType:        prizeType,
		PrizeDescription: prizeDescription,
		WinningTickets:   winnerEntry.TicketCount,
		TotalTickets:     totalTickets,
		DrawnAt:          time.Now(),
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.repo.InsertWinnerTx(ctx, tx, winner); err != nil {
		if errors.Is(err, repository.ErrWinnerExists) {
			return nil, ErrAlreadyDrawn
		}
		return nil, err
	}

	bonusDescription := fmt.Sprintf("Won Seoul trip raffle for %s", period)
	_, err = s.ledgerSvc.EarnTx(ctx, tx, winner.AccountID, s.cfg.Loyalty.WinnerBonusPoints,
		ledgermodels.ActionRaffleWinner, bonusDescription, winner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to award winner bonus: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	// A draw closes the period, so every cached stats entry is swept rather
	// than just the drawn period's key.
	if s.cache != nil {
		if err := s.cache.DeletePattern(ctx, statsCachePattern); err != nil {
			logger.Warn().Err(err).Str("period", period).Msg("Failed to invalidate raffle stats cache")
		}
	}

	logger.Info().
		Str("period", period).
		Str("winner_account_id", winner.AccountID).
		Int("winning_tickets", winner.WinningTickets).
		Int("total_tickets", totalTickets).
		Msg("Raffle winner drawn")

	resp := &models.DrawResponse{Period: period}
	resp.Winner.AccountID = winner.AccountID
	resp.Winner.TicketsHeld = winner.WinningTickets
	resp.Stats.TotalEntries = len(entries)
	resp.Stats.TotalTickets = totalTickets
	resp.Stats.WinningOdds = fmt.Sprintf("%.2f", float64(winner.WinningTickets)/float64(totalTickets)*100)

	return resp, nil
}

// pickWeighted draws one entry with probability proportional to its tickets.
// cumulative[i] is the number of tickets held by entries[0..i], so the entry
// owning the drawn offset is the first whose cumulative total exceeds it.
func (s *raffleService) pickWeighted(entries []models.RaffleEntry) (models.RaffleEntry, int) {
	cumulative := make([]int, len(entries))
	total := 0
	for i, entry := range entries {
		total += entry.TicketCount
		cumulative[i] = total
	}

	drawn := s.randIntn(total)
	idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > drawn })

	return entries[idx], total
}
