// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/polls/clock"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/views"
)

func NewRouter(s store.Store, v *views.Renderer, c clock.Clock, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(s, v, c, cfg)
	apiHandler := handlers.NewAPIHandler(s, c, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// HTML pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(questionHandler.Index))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.Detail))
	mux.HandleFunc("POST /questions/{id}/vote", middleware.WithLogging(questionHandler.Vote))
	mux.HandleFunc("GET /questions/{id}/results", middleware.WithLogging(questionHandler.Results))

	// JSON API
	mux.HandleFunc("GET /api/questions", middleware.WithLogging(apiHandler.ListQuestions))
	mux.HandleFunc("POST /api/questions", middleware.WithLogging(apiHandler.CreateQuestion))
	mux.HandleFunc("GET /api/questions/{id}", middleware.WithLogging(apiHandler.GetQuestion))
	mux.HandleFunc("POST /api/questions/{id}/choices", middleware.WithLogging(apiHandler.AddChoice))

	return mux
}
