package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/KarlaRL666/edufinanciero/internal/api"
	"github.com/KarlaRL666/edufinanciero/internal/ctxkeys"
	"github.com/KarlaRL666/edufinanciero/internal/model"
	"github.com/KarlaRL666/edufinanciero/internal/service"
)

type GoalHandler struct {
	ledgerService *service.LedgerService
}

func NewGoalHandler(ledgerService *service.LedgerService) *GoalHandler {
	return &GoalHandler{
		ledgerService: ledgerService,
	}
}

// goalResponse flattens the goal with its derived progress percentage.
type goalResponse struct {
	*model.Goal
	Percentage int `json:"percentage"`
}

func newGoalResponse(goal *model.Goal) goalResponse {
	return goalResponse{Goal: goal, Percentage: goal.Percentage()}
}

func newGoalResponses(goals []*model.Goal) []goalResponse {
	out := make([]goalResponse, 0, len(goals))
	for _, goal := range goals {
		out = append(out, newGoalResponse(goal))
	}
	return out
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.ledgerService.Goals(user.ID)
	if err != nil {
		slog.Error("failed to get goals", "error", err, "user_id", user.ID)
		api.Error(w, http.StatusInternalServerError, "failed to load goals", "INTERNAL_ERROR")
		return
	}

	api.JSON(w, http.StatusOK, newGoalResponses(goals))
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.ledgerService.Goal(user.ID, goalID)
	if err != nil {
		api.DomainError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, newGoalResponse(goal))
}

type createGoalRequest struct {
	Title    string  `json:"title"`
	Target   float64 `json:"target"`
	Deadline string  `json:"deadline,omitempty"` // YYYY-MM-DD
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createGoalRequest
	err := api.Decode(r, &req)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
		return
	}

	var deadline *time.Time
	if req.Deadline != "" {
		d, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			api.Error(w, http.StatusBadRequest, "deadline must be a date in YYYY-MM-DD format", "VALIDATION_ERROR")
			return
		}
		deadline = &d
	}

	goal, err := h.ledgerService.CreateGoal(user.ID, req.Title, req.Target, deadline)
	if err != nil {
		api.DomainError(w, err)
		return
	}

	slog.Info("goal created", "goal_id", goal.ID, "user_id", user.ID)
	api.JSON(w, http.StatusCreated, newGoalResponse(goal))
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.ledgerService.DeleteGoal(user.ID, goalID)
	if err != nil {
		api.DomainError(w, err)
		return
	}

	slog.Info("goal deleted", "goal_id", goalID, "user_id", user.ID)
	w.WriteHeader(http.StatusNoContent)
}

type depositRequest struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (h *GoalHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req depositRequest
	err := api.Decode(r, &req)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
		return
	}

	date := time.Now()
	if req.Date != "" {
		d, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			api.Error(w, http.StatusBadRequest, "date must be in YYYY-MM-DD format", "VALIDATION_ERROR")
			return
		}
		date = d
	}

	result, err := h.ledgerService.Deposit(user.ID, goalID, req.Amount, date)
	if err != nil {
		api.DomainError(w, err)
		return
	}

	if result.Completion != nil {
		slog.Info("goal completed",
			"goal_id", goalID,
			"user_id", user.ID,
			"reward_id", result.Completion.Reward.RewardID,
			"leveled_up", result.Completion.LeveledUp,
		)
	}

	api.JSON(w, http.StatusCreated, result)
}

func (h *GoalHandler) History(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	transactions, err := h.ledgerService.History(user.ID, goalID)
	if err != nil {
		api.DomainError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, transactions)
}
