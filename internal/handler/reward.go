package handler

import (
	"log/slog"
	"net/http"

	"github.com/KarlaRL666/edufinanciero/internal/api"
	"github.com/KarlaRL666/edufinanciero/internal/ctxkeys"
	"github.com/KarlaRL666/edufinanciero/internal/model"
	"github.com/KarlaRL666/edufinanciero/internal/service"
)

type RewardHandler struct {
	gamifyService *service.GamifyService
}

func NewRewardHandler(gamifyService *service.GamifyService) *RewardHandler {
	return &RewardHandler{
		gamifyService: gamifyService,
	}
}

func (h *RewardHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, model.RewardCatalog)
}

func (h *RewardHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	rewards, err := h.gamifyService.Inventory(user.ID)
	if err != nil {
		slog.Error("failed to get inventory", "error", err, "user_id", user.ID)
		api.Error(w, http.StatusInternalServerError, "failed to load rewards", "INTERNAL_ERROR")
		return
	}

	api.JSON(w, http.StatusOK, rewards)
}
