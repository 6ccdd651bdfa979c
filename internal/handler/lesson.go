package handler

import (
	"log/slog"
	"net/http"

	"github.com/KarlaRL666/edufinanciero/internal/api"
	"github.com/KarlaRL666/edufinanciero/internal/service"
)

type LessonHandler struct {
	lessonService *service.LessonService
}

func NewLessonHandler(lessonService *service.LessonService) *LessonHandler {
	return &LessonHandler{
		lessonService: lessonService,
	}
}

func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.lessonService.Lessons()
	if err != nil {
		slog.Error("failed to list lessons", "error", err)
		api.Error(w, http.StatusInternalServerError, "failed to load lessons", "INTERNAL_ERROR")
		return
	}

	api.JSON(w, http.StatusOK, lessons)
}

func (h *LessonHandler) Show(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	lesson, err := h.lessonService.Lesson(slug)
	if err != nil {
		api.Error(w, http.StatusNotFound, "lesson not found", "NOT_FOUND")
		return
	}

	api.JSON(w, http.StatusOK, lesson)
}
