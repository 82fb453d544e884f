package models

import "time"

// Account is a loyalty program member. PointsBalance is a denormalized projection
// of the ledger, updated in the same transaction as every ledger write. Tier is
// always derived from the balance on read and never stored.
type Account struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	CountryCode   string    `json:"country_code"`
	PointsBalance int       `json:"points_balance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AccountCreate struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	CountryCode string `json:"country_code"`
}

// TierInfo describes the tier derived from a point balance and the progress
// toward the next tier.
type TierInfo struct {
	Tier             string `json:"tier"`
	CurrentThreshold int    `json:"current_threshold"`
	NextTier         string `json:"next_tier,omitempty"`
	NextThreshold    int    `json:"next_threshold,omitempty"`
	ProgressPercent  int    `json:"progress_percent"`
}

type AccountResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	CountryCode   string    `json:"country_code"`
	PointsBalance int       `json:"points_balance"`
	Tier          TierInfo  `json:"tier"`
	CreatedAt     time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
