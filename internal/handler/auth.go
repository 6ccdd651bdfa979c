package handler

import (
	"log/slog"
	"net/http"

	"github.com/KarlaRL666/edufinanciero/internal/api"
	"github.com/KarlaRL666/edufinanciero/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	err := api.Decode(r, &req)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
		return
	}

	user, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		api.DomainError(w, err)
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		api.Error(w, http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
		return
	}

	h.authService.SetJWTCookie(w, token, h.authService.JWTExpiry())

	slog.Info("user registered", "user_id", user.ID)
	api.JSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	err := api.Decode(r, &req)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body", "VALIDATION_ERROR")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		api.DomainError(w, err)
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		api.Error(w, http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
		return
	}

	h.authService.SetJWTCookie(w, token, h.authService.JWTExpiry())

	api.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
