package models

import "time"

const (
	RewardTypeDiscount   = "discount"
	RewardTypePhysical   = "physical"
	RewardTypeDigital    = "digital"
	RewardTypeExperience = "experience"
)

const (
	StatusPending   = "pending"
	StatusFulfilled = "fulfilled"
	StatusFailed    = "failed"
)

// Reward is a catalogue item redeemable with points.
type Reward struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsCost     int    `json:"points_cost"`
	Category       string `json:"category"`
	Type           string `json:"type"`
	LevelRequired  string `json:"level_required"`
	EstimatedValue int    `json:"estimated_value,omitempty"`
}

type RewardWithAffordability struct {
	Reward
	Affordable   bool `json:"affordable"`
	PointsNeeded int  `json:"points_needed"`
}

type ShippingAddress struct {
	Name        string `json:"name"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code"`
}

// RewardRedemption tracks one redemption from debit to fulfillment. A failed
// fulfillment keeps the debit and the record so support can reconcile it by
// hand instead of the points silently vanishing.
type RewardRedemption struct {
	ID              string                 `json:"id"`
	AccountID       string                 `json:"account_id"`
	RewardID        string                 `json:"reward_id"`
	RewardName      string                 `json:"reward_name"`
	PointsCost      int                    `json:"points_cost"`
	RewardType      string                 `json:"reward_type"`
	Status          string                 `json:"status"`
	ShippingAddress *ShippingAddress       `json:"shipping_address,omitempty"`
	FulfillmentData map[string]interface{} `json:"fulfillment_data,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type RedeemRequest struct {
	RewardID        string           `json:"reward_id" binding:"required"`
	ShippingAddress *ShippingAddress `json:"shipping_address"`
}

type RedeemResponse struct {
	RedemptionID    string                 `json:"redemption_id"`
	PointsSpent     int                    `json:"points_spent"`
	RemainingPoints int                    `json:"remaining_points"`
	Status          string                 `json:"status"`
	Reward          Reward                 `json:"reward"`
	Fulfillment     map[string]interface{} `json:"fulfillment,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
