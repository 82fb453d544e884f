package service

import "loyalty-raffle-backend/internal/features/account/models"

// Tier thresholds are inclusive lower bounds on the current point balance:
// a balance sitting exactly on a threshold belongs to the higher tier.
type tierLevel struct {
	Name      string
	Threshold int
}

var tierLevels = []tierLevel{
	{Name: "Bronze", Threshold: 0},
	{Name: "Silver", Threshold: 1000},
	{Name: "Gold", Threshold: 3000},
	{Name: "Platinum", Threshold: 5000},
	{Name: "Diamond", Threshold: 10000},
}

// TierFor derives the tier and progress toward the next tier for a balance.
// Pure and deterministic; negative balances are clamped to zero.
func TierFor(balance int) models.TierInfo {
	if balance < 0 {
		balance = 0
	}

	idx := 0
	for i, level := range tierLevels {
		if balance >= level.Threshold {
			idx = i
		}
	}

	current := tierLevels[idx]
	info := models.TierInfo{
		Tier:             current.Name,
		CurrentThreshold: current.Threshold,
	}

	if idx == len(tierLevels)-1 {
		info.ProgressPercent = 100
		return info
	}

	next := tierLevels[idx+1]
	info.NextTier = next.Name
	info.NextThreshold = next.Threshold
	info.ProgressPercent = (balance - current.Threshold) * 100 / (next.Threshold - current.Threshold)

	return info
}

// TierRank returns the ordinal position of a tier name, -1 if unknown.
// Used to gate rewards that require a minimum tier.
func TierRank(name string) int {
	for i, level := range tierLevels {
		if level.Name == name {
			return i
		}
	}
	return -1
}
