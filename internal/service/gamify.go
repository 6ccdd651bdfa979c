package service

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/KarlaRL666/edufinanciero/internal/model"
	"github.com/KarlaRL666/edufinanciero/internal/repository"
)

// XPGoalCompleted is the experience awarded when a goal reaches its
// target. A goal can complete at most once (deposits are rejected
// afterwards), so the award fires at most once per goal lifetime.
const XPGoalCompleted = 300

// CompletionResult describes what a user earned for completing a goal.
type CompletionResult struct {
	Reward    *model.Reward `json:"reward"`
	XPAwarded int           `json:"xpAwarded"`
	LeveledUp bool          `json:"leveledUp"`
	NewLevel  int           `json:"newLevel"`
}

// GamifyService converts goal completion events into XP, level
// transitions and reward grants.
type GamifyService struct {
	userRepository   repository.UserRepository
	rewardRepository repository.RewardRepository
	pick             func(n int) int
	now              func() time.Time
}

func NewGamifyService(userRepository repository.UserRepository, rewardRepository repository.RewardRepository) *GamifyService {
	return &GamifyService{
		userRepository:   userRepository,
		rewardRepository: rewardRepository,
		pick:             rand.IntN,
		now:              time.Now,
	}
}

// AwardGoalCompletion grants XP, recomputes the level and appends one
// uniformly chosen catalog reward to the user's inventory. It runs
// inside the caller's transaction so the goal update and the reward
// grant commit together or not at all.
func (s *GamifyService) AwardGoalCompletion(tx *sqlx.Tx, userID string) (*CompletionResult, error) {
	user, err := s.userRepository.WithTx(tx).ByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user for award: %w", err)
	}

	previousLevel := model.LevelForXP(user.XP)
	user.XP += XPGoalCompleted
	user.Level = model.LevelForXP(user.XP)

	entry := model.RewardCatalog[s.pick(len(model.RewardCatalog))]
	reward := &model.Reward{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		RewardID:  entry.ID,
		Title:     entry.Title,
		Category:  entry.Category,
		GrantedAt: s.now(),
	}

	err = s.rewardRepository.WithTx(tx).Create(reward)
	if err != nil {
		return nil, fmt.Errorf("failed to grant reward: %w", err)
	}

	err = s.userRepository.WithTx(tx).Update(user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user progression: %w", err)
	}

	return &CompletionResult{
		Reward:    reward,
		XPAwarded: XPGoalCompleted,
		LeveledUp: user.Level > previousLevel,
		NewLevel:  user.Level,
	}, nil
}

// Inventory returns the user's granted rewards, most recent first.
func (s *GamifyService) Inventory(userID string) ([]*model.Reward, error) {
	return s.rewardRepository.ByUser(userID)
}
