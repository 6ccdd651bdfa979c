package model

import (
	"time"
)

type RewardCategory string

const (
	RewardCategoryCourse  RewardCategory = "course"
	RewardCategoryPoints  RewardCategory = "points"
	RewardCategoryGift    RewardCategory = "gift"
	RewardCategoryPremium RewardCategory = "premium"
)

// CatalogReward is an entry in the fixed reward catalog.
type CatalogReward struct {
	ID       int            `json:"id"`
	Title    string         `json:"title"`
	Category RewardCategory `json:"category"`
}

// RewardCatalog is resolved once at startup and never changes at
// runtime. Selection on goal completion is uniform across all entries.
var RewardCatalog = []CatalogReward{
	{ID: 1, Title: "Personal Finance 101 course", Category: RewardCategoryCourse},
	{ID: 2, Title: "500 bonus points", Category: RewardCategoryPoints},
	{ID: 3, Title: "Surprise gift box", Category: RewardCategoryGift},
	{ID: 4, Title: "Investing basics course", Category: RewardCategoryCourse},
	{ID: 5, Title: "1 month premium access", Category: RewardCategoryPremium},
}

// CatalogRewardByID looks up a catalog entry. Grants always reference
// a valid entry, so callers may treat a false return as corruption.
func CatalogRewardByID(id int) (CatalogReward, bool) {
	for _, r := range RewardCatalog {
		if r.ID == id {
			return r, true
		}
	}
	return CatalogReward{}, false
}

// Reward is a granted catalog entry in a user's inventory. Immutable
// once granted.
type Reward struct {
	ID        string         `db:"id" json:"id"`
	UserID    string         `db:"user_id" json:"userId"`
	RewardID  int            `db:"reward_id" json:"rewardId"`
	Title     string         `db:"title" json:"title"`
	Category  RewardCategory `db:"category" json:"category"`
	GrantedAt time.Time      `db:"granted_at" json:"grantedAt"`
}
