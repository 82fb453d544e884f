package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor_Thresholds(t *testing.T) {
	tests := []struct {
		balance int
		tier    string
	}{
		{0, "Bronze"},
		{999, "Bronze"},
		{1000, "Silver"},
		{2999, "Silver"},
		{3000, "Gold"},
		{4999, "Gold"},
		{5000, "Platinum"},
		{9999, "Platinum"},
		{10000, "Diamond"},
		{50000, "Diamond"},
	}

	for _, tt := range tests {
		info := TierFor(tt.balance)
		assert.Equal(t, tt.tier, info.Tier, "balance %d", tt.balance)
	}
}

func TestTierFor_Progress(t *testing.T) {
	// Halfway from Bronze (0) to Silver (1000).
	info := TierFor(500)
	assert.Equal(t, "Bronze", info.Tier)
	assert.Equal(t, "Silver", info.NextTier)
	assert.Equal(t, 1000, info.NextThreshold)
	assert.Equal(t, 50, info.ProgressPercent)

	// Exactly on a threshold belongs to the higher tier with zero progress.
	info = TierFor(1000)
	assert.Equal(t, "Silver", info.Tier)
	assert.Equal(t, 0, info.ProgressPercent)

	// Top tier has no next tier and reports full progress.
	info = TierFor(10000)
	assert.Equal(t, "Diamond", info.Tier)
	assert.Empty(t, info.NextTier)
	assert.Equal(t, 100, info.ProgressPercent)
}

func TestTierFor_ProgressMonotonic(t *testing.T) {
	prevRank, prevProgress := 0, -1
	for balance := 0; balance <= 12000; balance += 100 {
		info := TierFor(balance)
		rank := TierRank(info.Tier)
		if rank == prevRank {
			assert.GreaterOrEqual(t, info.ProgressPercent, prevProgress, "balance %d", balance)
		} else {
			assert.Greater(t, rank, prevRank, "balance %d", balance)
		}
		prevRank, prevProgress = rank, info.ProgressPercent
	}
}

func TestTierFor_NegativeBalanceClamped(t *testing.T) {
	info := TierFor(-50)
	assert.Equal(t, "Bronze", info.Tier)
	assert.Equal(t, 0, info.ProgressPercent)
}

func TestTierRank(t *testing.T) {
	assert.Equal(t, 0, TierRank("Bronze"))
	assert.Equal(t, 4, TierRank("Diamond"))
	assert.Equal(t, -1, TierRank("Wood"))
	assert.Equal(t, -1, TierRank(""))
}
