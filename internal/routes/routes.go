package routes

import (
	"net/http"

	"github.com/KarlaRL666/edufinanciero/internal/app"
	"github.com/KarlaRL666/edufinanciero/internal/handler"
	"github.com/KarlaRL666/edufinanciero/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	auth := handler.NewAuthHandler(app.AuthService)
	account := handler.NewAccountHandler(app.UserService, app.GamifyService)
	goal := handler.NewGoalHandler(app.LedgerService)
	dashboard := handler.NewDashboardHandler(app.LedgerService, app.Cfg.ActivityLimit)
	reward := handler.NewRewardHandler(app.GamifyService)
	calculator := handler.NewCalculatorHandler(app.CalculatorService)
	lesson := handler.NewLessonHandler(app.LessonService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/health", health.Health)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	// Educational content
	mux.HandleFunc("GET /api/lessons", lesson.List)
	mux.HandleFunc("GET /api/lessons/{slug}", lesson.Show)

	// Simulators
	mux.HandleFunc("POST /api/simulator/savings", calculator.Savings)
	mux.HandleFunc("POST /api/simulator/loan", calculator.Loan)

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	// Profile
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(account.Me))
	mux.HandleFunc("PATCH /api/me/name", middleware.RequireAuth(account.UpdateName))
	mux.HandleFunc("POST /api/me/password", middleware.RequireAuth(account.ChangePassword))

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(dashboard.Summary))

	// Goals & deposits
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))
	mux.HandleFunc("POST /api/goals/{id}/deposits", middleware.RequireAuth(goal.Deposit))
	mux.HandleFunc("GET /api/goals/{id}/deposits", middleware.RequireAuth(goal.History))

	// Rewards
	mux.HandleFunc("GET /api/rewards/catalog", middleware.RequireAuth(reward.Catalog))
	mux.HandleFunc("GET /api/rewards", middleware.RequireAuth(reward.Inventory))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserService),
	)

	return handler
}
