// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/impact-tokens/auth"
	"github.com/danielhkuo/impact-tokens/ballot"
	"github.com/danielhkuo/impact-tokens/cliparse"
	"github.com/danielhkuo/impact-tokens/metrics"
	"github.com/danielhkuo/impact-tokens/middleware"
	"github.com/danielhkuo/impact-tokens/models"
	"github.com/danielhkuo/impact-tokens/store"
)

type VoteHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVoteHandler(st *store.Store, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{store: st, cfg: cfg}
}

// reject writes a structured vote rejection with a stable reason code.
func reject(w http.ResponseWriter, statusCode int, reason string) {
	middleware.JSONResponse(w, statusCode, models.VoteResponse{
		Success: false,
		Reason:  reason,
	})
}

// Submit handles POST /votes
//
// Pipeline: resolve voter identity → dedup fast path → normalize payload →
// atomic append. A failure at any stage leaves no partial record and no
// tally change; the append itself is the authoritative duplicate check.
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity := h.voterIdentity(r)
	if identity == "" {
		reject(w, http.StatusBadRequest, models.ReasonMissingIdentity)
		return
	}

	raw, err := middleware.ParseFlexibleBody(r)
	if err != nil {
		reject(w, http.StatusBadRequest, models.ReasonMissingField)
		return
	}

	voted, err := h.store.HasVoted(identity)
	if err != nil {
		slog.Error("failed to check voter identity", "error", err)
		reject(w, http.StatusInternalServerError, models.ReasonStorageFailure)
		return
	}
	if voted {
		metrics.VotesRejected.WithLabelValues(models.ReasonAlreadyVoted).Inc()
		reject(w, http.StatusForbidden, models.ReasonAlreadyVoted)
		return
	}

	candidates, err := h.store.Candidates(true)
	if err != nil {
		slog.Error("failed to load candidates", "error", err)
		reject(w, http.StatusInternalServerError, models.ReasonStorageFailure)
		return
	}

	rec, verr := ballot.Normalize(raw, ballot.NewRoster(candidates))
	if verr != nil {
		metrics.VotesRejected.WithLabelValues(verr.Reason).Inc()
		reject(w, http.StatusBadRequest, verr.Reason)
		return
	}
	rec.SourceIdentity = identity

	if err := h.store.Append(rec); err != nil {
		if errors.Is(err, store.ErrAlreadyVoted) {
			// Lost the race against a concurrent submission from the
			// same identity.
			metrics.VotesRejected.WithLabelValues(models.ReasonAlreadyVoted).Inc()
			reject(w, http.StatusForbidden, models.ReasonAlreadyVoted)
			return
		}
		slog.Error("failed to record vote", "error", err, "voter_id", rec.VoterID)
		reject(w, http.StatusInternalServerError, models.ReasonStorageFailure)
		return
	}

	metrics.VotesAccepted.Inc()
	metrics.SelectionsRecorded.Add(float64(len(rec.CandidateIDs)))
	slog.Info("vote recorded", "voter_id", rec.VoterID, "selections", len(rec.CandidateIDs))

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		Success: true,
		VoterID: rec.VoterID,
		Message: "Vote submitted successfully!",
	})
}

// IssueToken handles POST /voter-token
//
// Hands out an opaque token the client can persist locally; submissions
// carrying it in X-Voter-Token are deduplicated by token instead of by
// network address, which survives NAT and address churn.
func (h *VoteHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	token, err := auth.GenerateVoterToken()
	if err != nil {
		slog.Error("failed to generate voter token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.IssueTokenResponse{
		VoterToken: token,
	})
}

// voterIdentity derives the deduplication key for a request: a client-held
// token when presented, otherwise the salted hash of the network address.
// The raw address never reaches storage. An empty result means the request
// must be rejected before the dedup guard is consulted.
func (h *VoteHandler) voterIdentity(r *http.Request) string {
	if token := r.Header.Get("X-Voter-Token"); token != "" {
		return "token:" + token
	}
	if ip := middleware.GetClientIP(r); ip != "" {
		return "ip:" + auth.HashIdentity(ip, h.cfg.IdentitySalt)
	}
	return ""
}
