// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/impact-tokens/cliparse"
	"github.com/danielhkuo/impact-tokens/handlers"
	"github.com/danielhkuo/impact-tokens/middleware"
	"github.com/danielhkuo/impact-tokens/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize store and handlers
	st := store.New(db)
	voteHandler := handlers.NewVoteHandler(st, cfg)
	resultsHandler := handlers.NewResultsHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Voting operations (public)
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.Submit))
	mux.HandleFunc("POST /voter-token", middleware.WithLogging(voteHandler.IssueToken))

	// Leaderboard and roster (public)
	mux.HandleFunc("GET /rankings", middleware.WithLogging(resultsHandler.Rankings))
	mux.HandleFunc("GET /candidates", middleware.WithLogging(resultsHandler.Candidates))

	// Administration (requires X-Admin-Key)
	mux.HandleFunc("GET /votes", middleware.WithLogging(adminHandler.ListVoters))
	mux.HandleFunc("GET /votes/export", middleware.WithLogging(adminHandler.ExportCSV))
	mux.HandleFunc("DELETE /votes", middleware.WithLogging(adminHandler.EraseAll))
	mux.HandleFunc("POST /candidates", middleware.WithLogging(adminHandler.AddCandidate))
	mux.HandleFunc("DELETE /candidates/{id}", middleware.WithLogging(adminHandler.RemoveCandidate))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("impact-tokens API v1"))
	})

	return mux
}
