// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/impact-tokens/auth"
	"github.com/danielhkuo/impact-tokens/cliparse"
	"github.com/danielhkuo/impact-tokens/metrics"
	"github.com/danielhkuo/impact-tokens/middleware"
	"github.com/danielhkuo/impact-tokens/models"
	"github.com/danielhkuo/impact-tokens/store"
)

// awardTimeLayout is the timestamp format of the original dashboard export.
const awardTimeLayout = "2006-01-02 15:04:05"

type AdminHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAdminHandler(st *store.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: st, cfg: cfg}
}

func (h *AdminHandler) authorized(w http.ResponseWriter, r *http.Request) bool {
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// ListVoters handles GET /votes
// Returns the voter roll in insertion order with resolved candidate labels,
// as shown on the admin dashboard.
func (h *AdminHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	voters, err := h.voterRoll()
	if err != nil {
		slog.Error("failed to build voter roll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voters)
}

// ExportCSV handles GET /votes/export
// Streams the voter roll as CSV in the original dashboard's column layout.
func (h *AdminHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	voters, err := h.voterRoll()
	if err != nil {
		slog.Error("failed to build voter roll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="impact_tokens.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"Rank", "Token ID", "Recipient Name", "Email Address", "Awarded To", "Award Time"})
	for i, v := range voters {
		email := ""
		if v.Email != nil {
			email = *v.Email
		}
		cw.Write([]string{
			strconv.Itoa(i + 1),
			v.VoterID,
			v.Name,
			email,
			strings.Join(v.AwardedTo, "; "),
			v.CastAt.Format(awardTimeLayout),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("failed to write CSV export", "error", err)
	}
}

// EraseAll handles DELETE /votes
// Clears every vote record; candidates stay and tallies reset to zero.
// Idempotent, so repeating the request is safe.
func (h *AdminHandler) EraseAll(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	erased, err := h.store.EraseAll()
	if err != nil {
		slog.Error("failed to erase votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to erase votes")
		return
	}

	metrics.ErasesTotal.Inc()
	slog.Info("all votes erased", "erased", erased)

	middleware.JSONResponse(w, http.StatusOK, models.EraseAllResponse{
		Erased:  erased,
		Message: "All votes erased",
	})
}

// AddCandidate handles POST /candidates
func (h *AdminHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Position == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "position is required")
		return
	}

	err := h.store.AddCandidate(models.Candidate{
		ID:       req.ID,
		Name:     req.Name,
		Position: req.Position,
	})
	if errors.Is(err, store.ErrCandidateExists) {
		middleware.ErrorResponse(w, http.StatusConflict, "Candidate id already exists")
		return
	}
	if err != nil {
		slog.Error("failed to add candidate", "error", err, "candidate_id", req.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add candidate")
		return
	}

	slog.Info("candidate added", "candidate_id", req.ID, "name", req.Name)
	middleware.JSONResponse(w, http.StatusCreated, models.Candidate{
		ID:       req.ID,
		Name:     req.Name,
		Position: req.Position,
		Active:   true,
	})
}

// RemoveCandidate handles DELETE /candidates/{id}
// Deactivates the candidate; recorded votes for it are kept for audit but
// leave the active rankings.
func (h *AdminHandler) RemoveCandidate(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	err = h.store.RemoveCandidate(id)
	if errors.Is(err, store.ErrCandidateNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		slog.Error("failed to remove candidate", "error", err, "candidate_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove candidate")
		return
	}

	slog.Info("candidate removed", "candidate_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// voterRoll joins vote records with candidate labels for display/export.
func (h *AdminHandler) voterRoll() ([]models.VoterRow, error) {
	candidates, err := h.store.Candidates(false)
	if err != nil {
		return nil, err
	}
	labels := make(map[int]string, len(candidates))
	for _, c := range candidates {
		labels[c.ID] = c.Name + " - " + c.Position
	}

	records, err := h.store.ListVotes()
	if err != nil {
		return nil, err
	}

	rows := make([]models.VoterRow, 0, len(records))
	for _, rec := range records {
		awarded := make([]string, 0, len(rec.CandidateIDs))
		for _, id := range rec.CandidateIDs {
			if label, ok := labels[id]; ok {
				awarded = append(awarded, label)
			}
		}
		rows = append(rows, models.VoterRow{
			VoterID:   rec.VoterID,
			Name:      rec.VoterName,
			Email:     rec.VoterEmail,
			AwardedTo: awarded,
			CastAt:    rec.CastAt,
		})
	}
	return rows, nil
}
