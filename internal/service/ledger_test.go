package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarlaRL666/edufinanciero/internal/model"
	"github.com/KarlaRL666/edufinanciero/internal/repository"
)

func TestCreateGoalValidation(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.CreateGoal(f.user.ID, "", 5000, nil)
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = f.ledger.CreateGoal(f.user.ID, "Beach Trip", 0, nil)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = f.ledger.CreateGoal(f.user.ID, "Beach Trip", -100, nil)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestCreateGoalStartsEmpty(t *testing.T) {
	f := newLedgerFixture(t)

	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 5000, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, goal.Saved)
	assert.False(t, goal.Completed)
	assert.False(t, goal.Expired)
	assert.Equal(t, 0, goal.Percentage())
}

func TestDepositAccumulates(t *testing.T) {
	f := newLedgerFixture(t)
	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 5000, nil)
	require.NoError(t, err)

	result, err := f.ledger.Deposit(f.user.ID, goal.ID, 1500, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 1500.0, result.Goal.Saved)
	assert.Equal(t, 30, result.Goal.Percentage())
	assert.False(t, result.Goal.Completed)
	assert.Nil(t, result.Completion)
	assert.Equal(t, model.TransactionKindDeposit, result.Transaction.Kind)
	assert.NotZero(t, result.Transaction.ID)
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	f := newLedgerFixture(t)
	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 5000, nil)
	require.NoError(t, err)

	_, err = f.ledger.Deposit(f.user.ID, goal.ID, 0, time.Now())
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.ledger.Deposit(f.user.ID, goal.ID, -50, time.Now())
	assert.ErrorIs(t, err, ErrInvalidAmount)

	reloaded, err := f.ledger.Goal(f.user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, reloaded.Saved)
}

func TestDepositRejectedWhenExceedingTarget(t *testing.T) {
	f := newLedgerFixture(t)
	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 5000, nil)
	require.NoError(t, err)

	_, err = f.ledger.Deposit(f.user.ID, goal.ID, 4800, time.Now())
	require.NoError(t, err)

	// Overshooting deposit is rejected, not truncated
	_, err = f.ledger.Deposit(f.user.ID, goal.ID, 300, time.Now())
	var exceeds *ExceedsTargetError
	require.ErrorAs(t, err, &exceeds)
	assert.Equal(t, 200.0, exceeds.MaxAllowed)

	// State unchanged
	reloaded, err := f.ledger.Goal(f.user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 4800.0, reloaded.Saved)
	assert.False(t, reloaded.Completed)

	history, err := f.ledger.History(f.user.ID, goal.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestDepositCompletesGoalAndAwards(t *testing.T) {
	f := newLedgerFixture(t)
	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 5000, nil)
	require.NoError(t, err)

	_, err = f.ledger.Deposit(f.user.ID, goal.ID, 1500, time.Now())
	require.NoError(t, err)

	result, err := f.ledger.Deposit(f.user.ID, goal.ID, 3500, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 5000.0, result.Goal.Saved)
	assert.True(t, result.Goal.Completed)
	assert.False(t, result.Goal.Expired)

	require.NotNil(t, result.Completion)
	assert.Equal(t, XPGoalCompleted, result.Completion.XPAwarded)
	assert.NotNil(t, result.Completion.Reward)

	user, err := f.users.ByID(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 300, user.XP)

	inventory, err := f.gamify.Inventory(f.user.ID)
	require.NoError(t, err)
	require.Len(t, inventory, 1)
	_, ok := model.CatalogRewardByID(inventory[0].RewardID)
	assert.True(t, ok)
}

func TestCompletedGoalIsTerminal(t *testing.T) {
	f := newLedgerFixture(t)
	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 1000, nil)
	require.NoError(t, err)

	_, err = f.ledger.Deposit(f.user.ID, goal.ID, 1000, time.Now())
	require.NoError(t, err)

	_, err = f.ledger.Deposit(f.user.ID, goal.ID, 1, time.Now())
	assert.ErrorIs(t, err, ErrGoalClosed)

	// No second award was granted
	inventory, err := f.gamify.Inventory(f.user.ID)
	require.NoError(t, err)
	assert.Len(t, inventory, 1)

	reloaded, err := f.ledger.Goal(f.user.ID, goal.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Completed)
	assert.Equal(t, 1000.0, reloaded.Saved)
}

func TestExpiredGoalRejectsDeposits(t *testing.T) {
	f := newLedgerFixture(t)
	deadline := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 5000, &deadline)
	require.NoError(t, err)

	// Freeze "today" past the deadline
	f.ledger.now = func() time.Time { return time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) }

	reloaded, err := f.ledger.Goal(f.user.ID, goal.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Expired)
	assert.False(t, reloaded.Completed)

	_, err = f.ledger.Deposit(f.user.ID, goal.ID, 100, time.Now())
	assert.ErrorIs(t, err, ErrGoalClosed)
}

func TestExpiryDerivedWithoutWrites(t *testing.T) {
	// A goal transitions to expired purely by "today" advancing
	f := newLedgerFixture(t)
	deadline := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 5000, &deadline)
	require.NoError(t, err)

	f.ledger.now = func() time.Time { return time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC) }
	reloaded, err := f.ledger.Goal(f.user.ID, goal.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Expired)

	f.ledger.now = func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }
	reloaded, err = f.ledger.Goal(f.user.ID, goal.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Expired)
}

func TestLevelUpOnCompletion(t *testing.T) {
	f := newLedgerFixture(t)

	// User at 400 XP completes a goal worth 300 XP: 700 XP, level 2
	f.user.XP = 400
	require.NoError(t, f.users.Update(f.user))

	goal, err := f.ledger.CreateGoal(f.user.ID, "Laptop", 1000, nil)
	require.NoError(t, err)

	result, err := f.ledger.Deposit(f.user.ID, goal.ID, 1000, time.Now())
	require.NoError(t, err)

	require.NotNil(t, result.Completion)
	assert.True(t, result.Completion.LeveledUp)
	assert.Equal(t, 2, result.Completion.NewLevel)

	user, err := f.users.ByID(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 700, user.XP)
	assert.Equal(t, 2, user.Level)
}

func TestHistoryMostRecentFirst(t *testing.T) {
	f := newLedgerFixture(t)
	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 5000, nil)
	require.NoError(t, err)

	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	_, err = f.ledger.Deposit(f.user.ID, goal.ID, 100, day(1))
	require.NoError(t, err)
	_, err = f.ledger.Deposit(f.user.ID, goal.ID, 200, day(3))
	require.NoError(t, err)
	_, err = f.ledger.Deposit(f.user.ID, goal.ID, 300, day(2))
	require.NoError(t, err)

	history, err := f.ledger.History(f.user.ID, goal.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 200.0, history[0].Amount)
	assert.Equal(t, 300.0, history[1].Amount)
	assert.Equal(t, 100.0, history[2].Amount)
}

func TestTransactionSumMatchesSaved(t *testing.T) {
	f := newLedgerFixture(t)
	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 5000, nil)
	require.NoError(t, err)

	amounts := []float64{100, 250, 75.5, 1000}
	for _, amount := range amounts {
		_, err = f.ledger.Deposit(f.user.ID, goal.ID, amount, time.Now())
		require.NoError(t, err)

		sum, err := f.transactions.SumByGoal(goal.ID)
		require.NoError(t, err)

		reloaded, err := f.ledger.Goal(f.user.ID, goal.ID)
		require.NoError(t, err)
		assert.InDelta(t, sum, reloaded.Saved, 0.001)
	}
}

func TestDeleteGoalCascadesTransactions(t *testing.T) {
	f := newLedgerFixture(t)
	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 5000, nil)
	require.NoError(t, err)

	_, err = f.ledger.Deposit(f.user.ID, goal.ID, 100, time.Now())
	require.NoError(t, err)

	err = f.ledger.DeleteGoal(f.user.ID, goal.ID)
	require.NoError(t, err)

	_, err = f.ledger.Goal(f.user.ID, goal.ID)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)

	// No orphaned deposits remain
	transactions, err := f.transactions.ByGoal(goal.ID)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestDeleteGoalRequiresOwnership(t *testing.T) {
	f := newLedgerFixture(t)
	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 5000, nil)
	require.NoError(t, err)

	err = f.ledger.DeleteGoal("someone-else", goal.ID)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)

	_, err = f.ledger.Goal(f.user.ID, goal.ID)
	assert.NoError(t, err)
}

func TestDashboardSummary(t *testing.T) {
	f := newLedgerFixture(t)

	trip, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 5000, nil)
	require.NoError(t, err)
	laptop, err := f.ledger.CreateGoal(f.user.ID, "Laptop", 1000, nil)
	require.NoError(t, err)

	_, err = f.ledger.Deposit(f.user.ID, trip.ID, 1500, time.Now())
	require.NoError(t, err)
	_, err = f.ledger.Deposit(f.user.ID, laptop.ID, 1000, time.Now())
	require.NoError(t, err)

	summary, err := f.ledger.DashboardSummary(f.user.ID, 5)
	require.NoError(t, err)

	assert.Equal(t, 2500.0, summary.TotalSaved)
	assert.Equal(t, 6000.0, summary.TotalTarget)
	assert.Equal(t, 1, summary.ActiveGoals)
	assert.Equal(t, 1, summary.CompletedGoals)
	assert.Equal(t, 0, summary.ExpiredGoals)
	assert.Len(t, summary.RecentActivity, 2)
}

func TestDashboardActivityOrderAndLimit(t *testing.T) {
	f := newLedgerFixture(t)
	goal, err := f.ledger.CreateGoal(f.user.ID, "Beach Trip", 10000, nil)
	require.NoError(t, err)

	sameDay := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 4; i++ {
		_, err = f.ledger.Deposit(f.user.ID, goal.ID, float64(i*10), sameDay)
		require.NoError(t, err)
	}

	summary, err := f.ledger.DashboardSummary(f.user.ID, 3)
	require.NoError(t, err)
	require.Len(t, summary.RecentActivity, 3)

	// Same-date ties resolve to the later-created transaction
	assert.Equal(t, 40.0, summary.RecentActivity[0].Amount)
	assert.Equal(t, 30.0, summary.RecentActivity[1].Amount)
	assert.Equal(t, 20.0, summary.RecentActivity[2].Amount)
	assert.Equal(t, "Beach Trip", summary.RecentActivity[0].GoalTitle)
}

func TestDepositOnMissingGoal(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.Deposit(f.user.ID, "missing", 100, time.Now())
	assert.True(t, errors.Is(err, repository.ErrGoalNotFound))
}
