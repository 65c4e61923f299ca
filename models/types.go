// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Rejection reason codes surfaced in VoteResponse.Reason.
const (
	ReasonAlreadyVoted      = "ALREADY_VOTED"
	ReasonMissingField      = "MISSING_FIELD"
	ReasonMissingIdentity   = "MISSING_IDENTITY"
	ReasonTooManySelections = "TOO_MANY_SELECTIONS"
	ReasonNoValidSelection  = "NO_VALID_SELECTION"
	ReasonStorageFailure    = "STORAGE_FAILURE"
)

// MaxSelections is the most distinct candidates a single Impact Token
// award may name.
const MaxSelections = 5

// Request types

type AddCandidateRequest struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

// Response types

// VoteResponse is the outcome of a vote submission. Success responses carry
// the generated voter id; rejections carry a stable reason code.
type VoteResponse struct {
	Success bool   `json:"success"`
	VoterID string `json:"voterId,omitempty"`
	Message string `json:"message,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type IssueTokenResponse struct {
	VoterToken string `json:"voter_token"`
}

type RankingsResponse struct {
	Rankings   []CandidateTally `json:"rankings"`
	TotalVotes int              `json:"total_votes"`
}

type EraseAllResponse struct {
	Erased  int    `json:"erased"`
	Message string `json:"message"`
}

// Domain types

type Candidate struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Active   bool   `json:"active"`
}

// VoteRecord is one recorded Impact Token award. At most one exists per
// source identity, and records are immutable once written.
type VoteRecord struct {
	VoterID        string    `json:"voter_id"`
	VoterName      string    `json:"voter_name"`
	VoterEmail     *string   `json:"voter_email"`
	CandidateIDs   []int     `json:"candidate_ids"`
	CastAt         time.Time `json:"cast_at"`
	SourceIdentity string    `json:"-"` // Never expose in JSON
}

// CandidateTally is one leaderboard row, derived from the selection table.
type CandidateTally struct {
	CandidateID int    `json:"candidateId"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Votes       int    `json:"votes"`
}

// VoterRow is one line of the voter roll as shown on the admin dashboard
// and exported to CSV.
type VoterRow struct {
	VoterID   string    `json:"voter_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	AwardedTo []string  `json:"awarded_to"`
	CastAt    time.Time `json:"cast_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
