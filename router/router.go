// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/recent-polls/cliparse"
	"github.com/danielhkuo/recent-polls/handlers"
	"github.com/danielhkuo/recent-polls/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	questionHandler := handlers.NewQuestionHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls (public)
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.List))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.Detail))
	mux.HandleFunc("GET /questions/{id}/results", middleware.WithLogging(questionHandler.Results))
	mux.HandleFunc("POST /questions/{id}/vote", middleware.WithLogging(questionHandler.Vote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("recent-polls API v1"))
	})

	return mux
}
