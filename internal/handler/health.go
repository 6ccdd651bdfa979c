package handler

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/KarlaRL666/edufinanciero/internal/api"
)

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	err := h.db.Ping()
	if err != nil {
		api.Error(w, http.StatusServiceUnavailable, "database unavailable", "UNHEALTHY")
		return
	}

	api.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
