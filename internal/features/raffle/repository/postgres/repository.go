package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	platform "loyalty-raffle-backend/internal/platform/postgres"

	ledgerrepo "loyalty-raffle-backend/internal/features/ledger/repository"
	"loyalty-raffle-backend/internal/features/raffle/models"
	"loyalty-raffle-backend/internal/features/raffle/repository"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	db     *sql.DB
	client *platform.Client
}

func NewPostgresRepository(client *platform.Client) repository.RaffleRepository {
	return &postgresRepository{db: client.GetDB(), client: client}
}

func (r *postgresRepository) BeginTx(ctx context.Context) (ledgerrepo.Transaction, error) {
	return r.client.BeginTx(ctx)
}

func (r *postgresRepository) AddTicketsTx(ctx context.Context, tx ledgerrepo.Transaction, accountID, period string, count int) (int, error) {
	ptx, ok := tx.(*platform.Transaction)
	if !ok {
		return 0, fmt.Errorf("unexpected transaction type %T", tx)
	}

	query := `
		INSERT INTO raffle_entries (account_id, period, ticket_count, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (account_id, period) DO UPDATE SET
			ticket_count = raffle_entries.ticket_count + EXCLUDED.ticket_count,
			updated_at = NOW()
		RETURNING ticket_count
	`
	var total int
	if err := ptx.Tx().QueryRowContext(ctx, query, accountID, period, count).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to add tickets: %w", err)
	}

	return total, nil
}

func (r *postgresRepository) GetEntry(ctx context.Context, accountID, period string) (*models.RaffleEntry, error) {
	query := `
		SELECT account_id, period, ticket_count, updated_at
		FROM raffle_entries
		WHERE account_id = $1 AND period = $2
	`
	var entry models.RaffleEntry
	err := r.db.QueryRowContext(ctx, query, accountID, period).Scan(
		&entry.AccountID, &entry.Period, &entry.TicketCount, &entry.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get raffle entry: %w", err)
	}

	return &entry, nil
}

func (r *postgresRepository) ListEntries(ctx context.Context, period string) ([]models.RaffleEntry, error) {
	// Deterministic order: the drawing engine builds its cumulative weights
	// over this exact ordering.
	query := `
		SELECT account_id, period, ticket_count, updated_at
		FROM raffle_entries
		WHERE period = $1 AND ticket_count > 0
		ORDER BY account_id
	`
	rows, err := r.db.QueryContext(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list raffle entries: %w", err)
	}
	defer rows.Close()

	var entries []models.RaffleEntry
	for rows.Next() {
		var entry models.RaffleEntry
		if err := rows.Scan(&entry.AccountID, &entry.Period, &entry.TicketCount, &entry.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan raffle entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *postgresRepository) PeriodStats(ctx context.Context, period string) (int, int, error) {
	query := `
		SELECT COALESCE(SUM(ticket_count), 0), COUNT(*)
		FROM raffle_entries
		WHERE period = $1 AND ticket_count > 0
	`
	var totalTickets, participants int
	if err := r.db.QueryRowContext(ctx, query, period).Scan(&totalTickets, &participants); err != nil {
		return 0, 0, fmt.Errorf("failed to get period stats: %w", err)
	}

	return totalTickets, participants, nil
}

func (r *postgresRepository) InsertWinnerTx(ctx context.Context, tx ledgerrepo.Transaction, winner *models.RaffleWinner) error {
	ptx, ok := tx.(*platform.Transaction)
	if !ok {
		return fmt.Errorf("unexpected transaction type %T", tx)
	}

	query := `
		INSERT INTO raffle_winners (id, account_id, period, prize_type, prize_description,
			winning_tickets, total_tickets, claimed, drawn_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8)
	`
	_, err := ptx.Tx().ExecContext(ctx, query,
		winner.ID, winner.AccountID, winner.Period, winner.PrizeType, winner.PrizeDescription,
		winner.WinningTickets, winner.TotalTickets, winner.DrawnAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return repository.ErrWinnerExists
		}
		return fmt.Errorf("failed to insert raffle winner: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetWinnerByPeriod(ctx context.Context, period string) (*models.RaffleWinner, error) {
	return r.getWinner(ctx, `period = $1`, period)
}

func (r *postgresRepository) GetWinnerForAccount(ctx context.Context, accountID, period string) (*models.RaffleWinner, error) {
	return r.getWinner(ctx, `account_id = $1 AND period = $2`, accountID, period)
}

func (r *postgresRepository) getWinner(ctx context.Context, where string, args ...interface{}) (*models.RaffleWinner, error) {
	query := `
		SELECT id, account_id, period, prize_type, prize_description,
			winning_tickets, total_tickets, claimed, claimed_at, drawn_at
		FROM raffle_winners
		WHERE ` + where
	var winner models.RaffleWinner
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&winner.ID, &winner.AccountID, &winner.Period, &winner.PrizeType, &winner.PrizeDescription,
		&winner.WinningTickets, &winner.TotalTickets, &winner.Claimed, &winner.ClaimedAt, &winner.DrawnAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get raffle winner: %w", err)
	}

	return &winner, nil
}

func (r *postgresRepository) MarkClaimed(ctx context.Context, winnerID, accountID string) (*models.RaffleWinner, error) {
	query := `
		UPDATE raffle_winners
		SET claimed = true, claimed_at = NOW()
		WHERE id = $1 AND account_id = $2 AND claimed = false
		RETURNING id, account_id, period, prize_type, prize_description,
			winning_tickets, total_tickets, claimed, claimed_at, drawn_at
	`
	var winner models.RaffleWinner
	err := r.db.QueryRowContext(ctx, query, winnerID, accountID).Scan(
		&winner.ID, &winner.AccountID, &winner.Period, &winner.PrizeType, &winner.PrizeDescription,
		&winner.WinningTickets, &winner.TotalTickets, &winner.Claimed, &winner.ClaimedAt, &winner.DrawnAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrWinnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark winner claimed: %w", err)
	}

	return &winner, nil
}
