package repository

import (
	"context"
	"errors"

	ledgerrepo "loyalty-raffle-backend/internal/features/ledger/repository"
	"loyalty-raffle-backend/internal/features/raffle/models"
)

var (
	ErrWinnerExists   = errors.New("winner already exists for period")
	ErrWinnerNotFound = errors.New("winner not found")
)

type RaffleRepository interface {
	BeginTx(ctx context.Context) (ledgerrepo.Transaction, error)

	// AddTicketsTx upserts tickets for (account, period) and returns the
	// accumulated total. Runs inside the same transaction as the ledger debit.
	AddTicketsTx(ctx context.Context, tx ledgerrepo.Transaction, accountID, period string, count int) (int, error)

	GetEntry(ctx context.Context, accountID, period string) (*models.RaffleEntry, error)
	ListEntries(ctx context.Context, period string) ([]models.RaffleEntry, error)
	PeriodStats(ctx context.Context, period string) (totalTickets, participants int, err error)

	// InsertWinnerTx fails with ErrWinnerExists when a winner row for the
	// period is already present, no matter who raced us there.
	InsertWinnerTx(ctx context.Context, tx ledgerrepo.Transaction, winner *models.RaffleWinner) error

	GetWinnerByPeriod(ctx context.Context, period string) (*models.RaffleWinner, error)
	GetWinnerForAccount(ctx context.Context, accountID, period string) (*models.RaffleWinner, error)
	MarkClaimed(ctx context.Context, winnerID, accountID string) (*models.RaffleWinner, error)
}
