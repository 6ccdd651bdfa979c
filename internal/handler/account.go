package handler

import (
	"log/slog"
	"net/http"

	"github.com/KarlaRL666/edufinanciero/internal/api"
	"github.com/KarlaRL666/edufinanciero/internal/ctxkeys"
	"github.com/KarlaRL666/edufinanciero/internal/model"
	"github.com/KarlaRL666/edufinanciero/internal/service"
)

type AccountHandler struct {
	userService   *service.UserService
	gamifyService *service.GamifyService
}

func NewAccountHandler(userService *service.UserService, gamifyService *service.GamifyService) *AccountHandler {
	return &AccountHandler{
		userService:   userService,
		gamifyService: gamifyService,
	}
}

// meResponse is the profile view: the user plus level progress and
// granted rewards.
type meResponse struct {
	*model.User
	XPIntoLevel int             `json:"xpIntoLevel"`
	XPPerLevel  int             `json:"xpPerLevel"`
	Inventory   []*model.Reward `json:"inventory"`
}

func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	inventory, err := h.gamifyService.Inventory(user.ID)
	if err != nil {
		slog.Error("failed to get inventory", "error", err, "user_id", user.ID)
		api.Error(w, http.StatusInternalServerError, "failed to load profile", "INTERNAL_ERROR")
		return
	}
	if inventory == nil {
		inventory = []*model.Reward{}
	}

	api.JSON(w, http.StatusOK, meResponse{
		User:        user,
		XPIntoLevel: user.XPIntoLevel(),
		XPPerLevel:  model.XPPerLevel,
		Inventory:   inventory,
	})
}

type updateNameRequest struct {
	Name string `json:"name"`
}

func (h *AccountHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req updateNameRequest
	err := api.Decode(r, &req)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
		return
	}

	updated, err := h.userService.UpdateName(user.ID, req.Name)
	if err != nil {
		api.DomainError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, updated)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req changePasswordRequest
	err := api.Decode(r, &req)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
		return
	}

	err = h.userService.ChangePassword(user.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		api.DomainError(w, err)
		return
	}

	slog.Info("password changed", "user_id", user.ID)
	w.WriteHeader(http.StatusNoContent)
}
