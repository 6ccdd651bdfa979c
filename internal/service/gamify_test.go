package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarlaRL666/edufinanciero/internal/model"
)

func (f *ledgerFixture) award(t *testing.T) *CompletionResult {
	t.Helper()

	tx, err := f.db.Beginx()
	require.NoError(t, err)

	result, err := f.gamify.AwardGoalCompletion(tx, f.user.ID)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	return result
}

func TestAwardGrantsXPAndReward(t *testing.T) {
	f := newLedgerFixture(t)
	f.gamify.pick = func(n int) int { return 0 }

	result := f.award(t)

	assert.Equal(t, XPGoalCompleted, result.XPAwarded)
	assert.False(t, result.LeveledUp)
	assert.Equal(t, 1, result.NewLevel)
	require.NotNil(t, result.Reward)
	assert.Equal(t, model.RewardCatalog[0].ID, result.Reward.RewardID)
	assert.Equal(t, model.RewardCatalog[0].Title, result.Reward.Title)
	assert.Equal(t, f.user.ID, result.Reward.UserID)

	user, err := f.users.ByID(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 300, user.XP)
	assert.Equal(t, 1, user.Level)
}

func TestAwardEveryCatalogEntry(t *testing.T) {
	f := newLedgerFixture(t)

	for i := range model.RewardCatalog {
		f.gamify.pick = func(n int) int { return i }
		result := f.award(t)
		assert.Equal(t, model.RewardCatalog[i].ID, result.Reward.RewardID)
		assert.Equal(t, model.RewardCatalog[i].Category, result.Reward.Category)
	}

	inventory, err := f.gamify.Inventory(f.user.ID)
	require.NoError(t, err)
	assert.Len(t, inventory, len(model.RewardCatalog))
}

func TestAwardLevelsUpAcrossThreshold(t *testing.T) {
	tests := []struct {
		startXP   int
		leveledUp bool
		newLevel  int
	}{
		{0, false, 1},
		{199, false, 1},
		{200, true, 2},
		{499, true, 2},
		{700, true, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("xp_%d", tt.startXP), func(t *testing.T) {
			f := newLedgerFixture(t)
			f.user.XP = tt.startXP
			f.user.Level = model.LevelForXP(tt.startXP)
			require.NoError(t, f.users.Update(f.user))

			result := f.award(t)

			assert.Equal(t, tt.leveledUp, result.LeveledUp)
			assert.Equal(t, tt.newLevel, result.NewLevel)

			user, err := f.users.ByID(f.user.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.startXP+XPGoalCompleted, user.XP)
			assert.Equal(t, tt.newLevel, user.Level)
		})
	}
}

func TestAwardRollsBackWithTransaction(t *testing.T) {
	f := newLedgerFixture(t)

	tx, err := f.db.Beginx()
	require.NoError(t, err)

	_, err = f.gamify.AwardGoalCompletion(tx, f.user.ID)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	user, err := f.users.ByID(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, user.XP)

	inventory, err := f.gamify.Inventory(f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, inventory)
}

func TestInventoryMostRecentFirst(t *testing.T) {
	f := newLedgerFixture(t)

	granted := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		i := i
		f.gamify.pick = func(n int) int { return i }
		f.gamify.now = func() time.Time { return granted.Add(time.Duration(i) * time.Hour) }
		f.award(t)
	}

	inventory, err := f.gamify.Inventory(f.user.ID)
	require.NoError(t, err)
	require.Len(t, inventory, 3)
	assert.Equal(t, model.RewardCatalog[2].ID, inventory[0].RewardID)
	assert.Equal(t, model.RewardCatalog[1].ID, inventory[1].RewardID)
	assert.Equal(t, model.RewardCatalog[0].ID, inventory[2].RewardID)
}
