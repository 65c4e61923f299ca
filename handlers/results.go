// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/impact-tokens/cliparse"
	"github.com/danielhkuo/impact-tokens/middleware"
	"github.com/danielhkuo/impact-tokens/models"
	"github.com/danielhkuo/impact-tokens/store"
)

type ResultsHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewResultsHandler(st *store.Store, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{store: st, cfg: cfg}
}

// Rankings handles GET /rankings
// Returns the live leaderboard: candidates sorted by votes descending,
// ties broken by ascending candidate id, plus the total selection count.
func (h *ResultsHandler) Rankings(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.store.Rankings()
	if err != nil {
		slog.Error("failed to compute rankings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	total, err := h.store.TotalVotes()
	if err != nil {
		slog.Error("failed to count votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RankingsResponse{
		Rankings:   rankings,
		TotalVotes: total,
	})
}

// Candidates handles GET /candidates
// Returns the active roster shown on the voting form.
func (h *ResultsHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.store.Candidates(true)
	if err != nil {
		slog.Error("failed to query candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}
