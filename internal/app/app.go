package app

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/KarlaRL666/edufinanciero/content"
	"github.com/KarlaRL666/edufinanciero/internal/config"
	"github.com/KarlaRL666/edufinanciero/internal/db"
	"github.com/KarlaRL666/edufinanciero/internal/repository"
	"github.com/KarlaRL666/edufinanciero/internal/service"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	AuthService       *service.AuthService
	UserService       *service.UserService
	LedgerService     *service.LedgerService
	GamifyService     *service.GamifyService
	CalculatorService *service.CalculatorService
	LessonService     *service.LessonService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	transactionRepository := repository.NewTransactionRepository(database)
	rewardRepository := repository.NewRewardRepository(database)

	// Services
	authService := service.NewAuthService(
		userRepository,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository)
	gamifyService := service.NewGamifyService(userRepository, rewardRepository)
	ledgerService := service.NewLedgerService(database, goalRepository, transactionRepository, gamifyService)
	calculatorService := service.NewCalculatorService()

	// Lessons come from the embedded content unless a directory is
	// mounted over it via CONTENT_PATH.
	var contentFS fs.FS = content.FS
	if cfg.ContentPath != "" {
		contentFS = os.DirFS(cfg.ContentPath)
	}
	lessonService := service.NewLessonService(contentFS)

	return &App{
		Cfg:               cfg,
		DB:                database,
		AuthService:       authService,
		UserService:       userService,
		LedgerService:     ledgerService,
		GamifyService:     gamifyService,
		CalculatorService: calculatorService,
		LessonService:     lessonService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
