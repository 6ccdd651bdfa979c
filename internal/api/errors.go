package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/KarlaRL666/edufinanciero/internal/repository"
	"github.com/KarlaRL666/edufinanciero/internal/service"
	"github.com/KarlaRL666/edufinanciero/internal/validation"
)

// DomainError writes the HTTP response for a service-layer error.
// Every branch is a recoverable, user-visible condition; anything
// unrecognized is logged and reported as a 500.
func DomainError(w http.ResponseWriter, err error) {
	var exceedsTarget *service.ExceedsTargetError
	if errors.As(err, &exceedsTarget) {
		max := exceedsTarget.MaxAllowed
		JSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:      exceedsTarget.Error(),
			Code:       "EXCEEDS_TARGET",
			MaxAllowed: &max,
		})
		return
	}

	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		Error(w, http.StatusBadRequest, validationErr.Message, "VALIDATION_ERROR")
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		Error(w, http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case errors.Is(err, service.ErrGoalClosed):
		Error(w, http.StatusConflict, err.Error(), "GOAL_CLOSED")
	case errors.Is(err, service.ErrEmailAlreadyExists):
		Error(w, http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, service.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, err.Error(), "AUTH_FAILURE")
	case errors.Is(err, service.ErrWrongPassword):
		Error(w, http.StatusUnauthorized, err.Error(), "AUTH_FAILURE")
	case errors.Is(err, repository.ErrGoalNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrTransactionNotFound):
		Error(w, http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrInvalidTarget),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrInvalidPrincipal),
		errors.Is(err, service.ErrInvalidLoan),
		errors.Is(err, service.ErrInvalidRate),
		errors.Is(err, service.ErrInvalidTerm):
		Error(w, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	default:
		slog.Error("unhandled domain error", "error", err)
		Error(w, http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
