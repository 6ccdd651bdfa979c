package handler

import (
	"log/slog"
	"net/http"

	"github.com/KarlaRL666/edufinanciero/internal/api"
	"github.com/KarlaRL666/edufinanciero/internal/ctxkeys"
	"github.com/KarlaRL666/edufinanciero/internal/service"
)

type DashboardHandler struct {
	ledgerService *service.LedgerService
	activityLimit int
}

func NewDashboardHandler(ledgerService *service.LedgerService, activityLimit int) *DashboardHandler {
	return &DashboardHandler{
		ledgerService: ledgerService,
		activityLimit: activityLimit,
	}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	summary, err := h.ledgerService.DashboardSummary(user.ID, h.activityLimit)
	if err != nil {
		slog.Error("failed to build dashboard summary", "error", err, "user_id", user.ID)
		api.Error(w, http.StatusInternalServerError, "failed to load dashboard", "INTERNAL_ERROR")
		return
	}

	api.JSON(w, http.StatusOK, summary)
}
