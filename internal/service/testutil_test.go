package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/KarlaRL666/edufinanciero/internal/db"
	"github.com/KarlaRL666/edufinanciero/internal/model"
	"github.com/KarlaRL666/edufinanciero/internal/repository"
)

// newTestDB opens a throwaway sqlite database with the full schema.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	return database
}

type ledgerFixture struct {
	db           *sqlx.DB
	users        repository.UserRepository
	goals        repository.GoalRepository
	transactions repository.TransactionRepository
	rewards      repository.RewardRepository
	gamify       *GamifyService
	ledger       *LedgerService
	user         *model.User
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	database := newTestDB(t)
	users := repository.NewUserRepository(database)
	goals := repository.NewGoalRepository(database)
	transactions := repository.NewTransactionRepository(database)
	rewards := repository.NewRewardRepository(database)
	gamify := NewGamifyService(users, rewards)
	ledger := NewLedgerService(database, goals, transactions, gamify)

	user := &model.User{
		ID:           "user-1",
		Name:         "Karla",
		Email:        "karla@example.com",
		PasswordHash: "irrelevant",
		Level:        1,
		XP:           0,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, users.Create(user))

	return &ledgerFixture{
		db:           database,
		users:        users,
		goals:        goals,
		transactions: transactions,
		rewards:      rewards,
		gamify:       gamify,
		ledger:       ledger,
		user:         user,
	}
}
