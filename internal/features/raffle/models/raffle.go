package models

import "time"

// Period is a calendar month in "YYYY-MM" form. Entries accumulate per period
// and exactly one winner may ever be drawn for it.

// RaffleEntry holds one account's accumulated tickets for a period.
type RaffleEntry struct {
	AccountID   string    `json:"account_id"`
	Period      string    `json:"period"`
	TicketCount int       `json:"ticket_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RaffleWinner is immutable once drawn. The unique constraint on Period is what
// makes concurrent draws safe.
type RaffleWinner struct {
	ID               string     `json:"id"`
	AccountID        string     `json:"account_id"`
	Period           string     `json:"period"`
	PrizeType        string     `json:"prize_type"`
	PrizeDescription string     `json:"prize_description"`
	WinningTickets   int        `json:"winning_tickets"`
	TotalTickets     int        `json:"total_tickets"`
	Claimed          bool       `json:"claimed"`
	ClaimedAt        *time.Time `json:"claimed_at,omitempty"`
	DrawnAt          time.Time  `json:"drawn_at"`
}

type PurchaseRequest struct {
	TicketCount int `json:"ticket_count"`
}

type PurchaseResponse struct {
	TicketsPurchased int `json:"tickets_purchased"`
	PointsSpent      int `json:"points_spent"`
	TotalTickets     int `json:"total_tickets"`
	RemainingPoints  int `json:"remaining_points"`
}

type WinnerInfo struct {
	PrizeType        string     `json:"prize_type"`
	PrizeDescription string     `json:"prize_description"`
	Claimed          bool       `json:"claimed"`
	ClaimedAt        *time.Time `json:"claimed_at,omitempty"`
}

type EntriesResponse struct {
	Period       string      `json:"period"`
	UserTickets  int         `json:"user_tickets"`
	TotalTickets int         `json:"total_tickets"`
	Odds         string      `json:"odds"`
	HasWon       bool        `json:"has_won"`
	Winner       *WinnerInfo `json:"winner,omitempty"`
	Raffle       RaffleInfo  `json:"raffle"`
}

// RaffleInfo describes the running raffle for a period: the prize and when the
// drawing happens (last day of the month).
type RaffleInfo struct {
	Period      string    `json:"period"`
	DrawingDate time.Time `json:"drawing_date"`
	Prize       PrizeInfo `json:"prize"`
}

type PrizeInfo struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	EstimatedValue int      `json:"estimated_value"`
	Includes       []string `json:"includes"`
}

type CurrentRaffleResponse struct {
	Period       string     `json:"period"`
	TotalTickets int        `json:"total_tickets"`
	Participants int        `json:"participants"`
	Drawn        bool       `json:"drawn"`
	Raffle       RaffleInfo `json:"raffle"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type DrawRequest struct {
	Month string `json:"month" binding:"required"`
}

type DrawResponse struct {
	Period string `json:"period"`
	Winner struct {
		AccountID   string `json:"account_id"`
		TicketsHeld int    `json:"tickets_held"`
	} `json:"winner"`
	Stats struct {
		TotalEntries int    `json:"total_entries"`
		TotalTickets int    `json:"total_tickets"`
		WinningOdds  string `json:"winning_odds"`
	} `json:"stats"`
}
