package service

import "loyalty-raffle-backend/internal/features/reward/models"

// The catalogue is static configuration, mirrored from the storefront. Items
// change with marketing campaigns, rarely enough that a code change plus
// deploy has been acceptable so far.
var rewardCatalog = []models.Reward{
	{
		ID:             "discount-5",
		Name:           "$5 Off Your Order",
		Description:    "Apply $5 discount to any Korean product purchase",
		PointsCost:     500,
		Category:       "discount",
		Type:           models.RewardTypeDiscount,
		LevelRequired:  "Bronze",
		EstimatedValue: 5,
	},
	{
		ID:             "korean-snack-box",
		Name:           "Korean Snack Discovery Box",
		Description:    "Curated box of popular Korean snacks and treats from Seoul",
		PointsCost:     2000,
		Category:       "physical",
		Type:           models.RewardTypePhysical,
		LevelRequired:  "Silver",
		EstimatedValue: 25,
	},
	{
		ID:             "kbeauty-starter-kit",
		Name:           "K-Beauty Starter Kit",
		Description:    "5-piece Korean skincare set with glass skin essentials",
		PointsCost:     3500,
		Category:       "beauty",
		Type:           models.RewardTypePhysical,
		LevelRequired:  "Gold",
		EstimatedValue: 45,
	},
	{
		ID:             "korean-language-course",
		Name:           "3-Month Korean Language Course",
		Description:    "Online Korean language course with K-drama context",
		PointsCost:     5000,
		Category:       "education",
		Type:           models.RewardTypeDigital,
		LevelRequired:  "Gold",
		EstimatedValue: 99,
	},
	{
		ID:             "seoul-fashion-week-merchandise",
		Name:           "Seoul Fashion Week Exclusive Merch",
		Description:    "Limited edition tote bag and accessories from Seoul Fashion Week",
		PointsCost:     7500,
		Category:       "fashion",
		Type:           models.RewardTypePhysical,
		LevelRequired:  "Platinum",
		EstimatedValue: 85,
	},
	{
		ID:             "virtual-seoul-tour",
		Name:           "Virtual Seoul Culture Tour",
		Description:    "Live-guided virtual tour of Seoul with Korean culture expert",
		PointsCost:     10000,
		Category:       "experience",
		Type:           models.RewardTypeExperience,
		LevelRequired:  "Platinum",
		EstimatedValue: 120,
	},
}

func findReward(id string) (models.Reward, bool) {
	for _, r := range rewardCatalog {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reward{}, false
}
