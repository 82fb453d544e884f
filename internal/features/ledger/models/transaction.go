package models

import "time"

const (
	KindEarn   = "earn"
	KindRedeem = "redeem"
)

// Actions are the business events that move points. The rates below are the
// default award amounts; callers may override them for value-dependent actions
// (purchases, delivery bonuses).
const (
	ActionWelcomeBonus     = "welcome_bonus"
	ActionDailyLogin       = "daily_login"
	ActionPurchase         = "purchase"
	ActionOrderDelivered   = "order_delivered"
	ActionCommunityPost    = "community_post"
	ActionCommentCreated   = "comment_created"
	ActionPostCommented    = "post_commented"
	ActionPostLiked        = "post_liked"
	ActionFollowedUser     = "followed_user"
	ActionGainedFollower   = "gained_follower"
	ActionReferral         = "referral"
	ActionCultureQuiz      = "culture_quiz"
	ActionSocialShare      = "social_share"
	ActionReviewWithPhoto  = "review_with_photo"
	ActionTryOnPhoto       = "try_on_photo"
	ActionRaffleTickets    = "raffle_tickets"
	ActionRaffleWinner     = "raffle_winner"
	ActionRewardRedemption = "reward_redemption"
)

var PointRates = map[string]int{
	ActionWelcomeBonus:    100,
	ActionDailyLogin:      2,
	ActionCommunityPost:   30,
	ActionCommentCreated:  5,
	ActionPostCommented:   2,
	ActionPostLiked:       1,
	ActionFollowedUser:    5,
	ActionGainedFollower:  10,
	ActionReferral:        200,
	ActionCultureQuiz:     25,
	ActionSocialShare:     15,
	ActionReviewWithPhoto: 50,
	ActionTryOnPhoto:      100,
	ActionRaffleWinner:    1000,
}

// LedgerTransaction is an immutable point movement. PointsDelta is positive for
// earns and negative for redeems. Rows are never updated or deleted; corrections
// are new transactions.
type LedgerTransaction struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	PointsDelta int       `json:"points_delta"`
	Kind        string    `json:"kind"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	ReferenceID string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type MonthlyStats struct {
	Earned int `json:"earned"`
	Spent  int `json:"spent"`
	Net    int `json:"net"`
}

type PointsSummary struct {
	CurrentPoints int                 `json:"current_points"`
	MonthlyStats  MonthlyStats        `json:"monthly_stats"`
	Transactions  []LedgerTransaction `json:"transactions"`
}

type AwardRequest struct {
	AccountID   string `json:"account_id" binding:"required"`
	Points      int    `json:"points" binding:"required,gt=0"`
	Action      string `json:"action" binding:"required"`
	Description string `json:"description"`
	ReferenceID string `json:"reference_id"`
}
