// Command edufin is the operations CLI: run or roll back database
// migrations and seed a demo account for local development.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/KarlaRL666/edufinanciero/internal/config"
	"github.com/KarlaRL666/edufinanciero/internal/db"
	"github.com/KarlaRL666/edufinanciero/internal/logger"
	"github.com/KarlaRL666/edufinanciero/internal/repository"
	"github.com/KarlaRL666/edufinanciero/internal/service"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "edufin",
		Short: "Operations tools for the savings goal service",
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(cfg *config.Config, database *sqlx.DB) error {
				return db.RunMigrations(database.DB, cfg.DBDriver)
			})
		},
	})

	migrate.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(cfg *config.Config, database *sqlx.DB) error {
				return db.MigrateDown(database.DB, cfg.DBDriver)
			})
		},
	})

	migrate.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(cfg *config.Config, database *sqlx.DB) error {
				return db.MigrationStatus(database.DB, cfg.DBDriver)
			})
		},
	})

	return migrate
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create a demo account with sample goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(cfg *config.Config, database *sqlx.DB) error {
				err := db.RunMigrations(database.DB, cfg.DBDriver)
				if err != nil {
					return err
				}

				users := repository.NewUserRepository(database)
				goals := repository.NewGoalRepository(database)
				transactions := repository.NewTransactionRepository(database)
				rewards := repository.NewRewardRepository(database)

				auth := service.NewAuthService(users, cfg.JWTSecret, cfg.IsProduction(), cfg.JWTExpiry)
				gamify := service.NewGamifyService(users, rewards)
				ledger := service.NewLedgerService(database, goals, transactions, gamify)

				user, err := auth.Register("Demo User", "demo@example.com", "local demo passphrase")
				if err != nil {
					return fmt.Errorf("failed to create demo user: %w", err)
				}

				deadline := time.Now().AddDate(0, 6, 0)
				trip, err := ledger.CreateGoal(user.ID, "Beach trip", 5000, &deadline)
				if err != nil {
					return err
				}
				_, err = ledger.Deposit(user.ID, trip.ID, 1500, time.Now())
				if err != nil {
					return err
				}

				laptop, err := ledger.CreateGoal(user.ID, "New laptop", 1200, nil)
				if err != nil {
					return err
				}
				_, err = ledger.Deposit(user.ID, laptop.ID, 1200, time.Now())
				if err != nil {
					return err
				}

				fmt.Printf("seeded demo@example.com (user %s)\n", user.ID)
				return nil
			})
		},
	}
}

func withDB(fn func(cfg *config.Config, database *sqlx.DB) error) error {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), "")

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(cfg, database)
}
