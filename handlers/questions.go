// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/awesome-answers/middleware"
	"github.com/danielhkuo/awesome-answers/models"
	"github.com/danielhkuo/awesome-answers/questions"
	"github.com/danielhkuo/awesome-answers/render"
	"github.com/danielhkuo/awesome-answers/store"
)

type QuestionHandler struct {
	store    store.QuestionStore
	renderer *render.Renderer
}

func NewQuestionHandler(s store.QuestionStore, renderer *render.Renderer) *QuestionHandler {
	return &QuestionHandler{store: s, renderer: renderer}
}

// New handles GET /questions/new
func (h *QuestionHandler) New(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, http.StatusOK, render.QuestionNew, models.QuestionFormView{
		Errors: models.FieldErrors{},
	})
}

// Create handles POST /questions
// Redirects to the new question, or re-renders the form with field errors
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields := middleware.ParseForm(r, models.FieldTitle, models.FieldBody)
	input := models.QuestionInput{
		Title: fields[models.FieldTitle],
		Body:  fields[models.FieldBody],
	}

	q, fieldErrs, err := questions.Create(r.Context(), h.store, input)
	if err != nil {
		slog.Error("failed to create question",
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to save question")
		return
	}

	if fieldErrs != nil {
		slog.Info("question rejected", "errors", fieldErrs)
		h.renderer.HTML(w, http.StatusOK, render.QuestionNew, models.QuestionFormView{
			Input:  input,
			Errors: fieldErrs,
		})
		return
	}

	slog.Info("question created", "question_id", q.ID)

	// 303 so a browser refresh re-fetches the question instead of resubmitting
	http.Redirect(w, r, "/questions/"+q.ID, http.StatusSeeOther)
}

// Show handles GET /questions/{id}
func (h *QuestionHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	q, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Error("failed to query question",
				"request_id", middleware.RequestID(r.Context()),
				"question_id", id,
				"error", err,
			)
		}
		h.renderer.Error(w, http.StatusNotFound, "Question not found")
		return
	}

	h.renderer.HTML(w, http.StatusOK, render.QuestionShow, models.QuestionView{Question: q})
}

// Health handles GET /health
func (h *QuestionHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("UNAVAILABLE"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
