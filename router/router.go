// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/awesome-answers/handlers"
	"github.com/danielhkuo/awesome-answers/middleware"
	"github.com/danielhkuo/awesome-answers/render"
	"github.com/danielhkuo/awesome-answers/store"
)

func NewRouter(s store.QuestionStore, renderer *render.Renderer) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(s, renderer)

	// Health check
	mux.HandleFunc("GET /health", questionHandler.Health)

	// Questions
	mux.HandleFunc("GET /questions/new", middleware.WithLogging(questionHandler.New))
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.Create))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.Show))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/questions/new", http.StatusSeeOther)
	})

	// Unknown pages get the HTML error page rather than the mux's plain text
	mux.HandleFunc("GET /", middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		renderer.Error(w, http.StatusNotFound, "Page not found")
	}))

	return middleware.Recover(renderer, mux)
}
