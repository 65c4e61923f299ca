// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/impact-tokens/models"
)

var (
	// ErrAlreadyVoted is returned by Append when a record already exists
	// for the submission's source identity.
	ErrAlreadyVoted = errors.New("identity has already voted")

	ErrCandidateExists   = errors.New("candidate id already exists")
	ErrCandidateNotFound = errors.New("candidate not found")
)

// Store owns the durable vote records and the candidate roster. It is the
// single writer; tallies are derived from it on read, never kept separately.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// HasVoted reports whether a vote record exists for the identity. This is
// the advisory fast path: the authoritative duplicate check is the UNIQUE
// constraint hit inside Append, so a false here does not reserve anything.
func (s *Store) HasVoted(identity string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM vote_record WHERE source_identity = $1)
	`, identity).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check identity: %w", err)
	}
	return exists, nil
}

// Append atomically records a vote. The insert into vote_record and the
// UNIQUE constraint on source_identity form the critical section: of any
// number of concurrent submissions for one identity, exactly one commit
// succeeds and the rest observe ErrAlreadyVoted. A failure at any point
// rolls the whole record back, so no partial vote or tally drift is
// possible.
func (s *Store) Append(rec models.VoteRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO vote_record (voter_id, source_identity, voter_name, voter_email, cast_at)
		VALUES ($1, $2, $3, $4, $5)
	`, rec.VoterID, rec.SourceIdentity, rec.VoterName, rec.VoterEmail, rec.CastAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyVoted
		}
		return fmt.Errorf("failed to insert vote record: %w", err)
	}

	for i, candidateID := range rec.CandidateIDs {
		_, err = tx.Exec(`
			INSERT INTO vote_selection (voter_id, candidate_id, ordinal)
			VALUES ($1, $2, $3)
		`, rec.VoterID, candidateID, i)
		if err != nil {
			return fmt.Errorf("failed to insert selection for candidate %d: %w", candidateID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vote: %w", err)
	}
	return nil
}

// ListVotes returns every vote record in insertion order, selections
// attached in the order the voter named them.
func (s *Store) ListVotes() ([]models.VoteRecord, error) {
	rows, err := s.db.Query(`
		SELECT voter_id, source_identity, voter_name, voter_email, cast_at
		FROM vote_record
		ORDER BY cast_at, voter_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vote records: %w", err)
	}
	defer rows.Close()

	records := []models.VoteRecord{}
	index := map[string]int{}
	for rows.Next() {
		var rec models.VoteRecord
		if err := rows.Scan(&rec.VoterID, &rec.SourceIdentity, &rec.VoterName, &rec.VoterEmail, &rec.CastAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote record: %w", err)
		}
		index[rec.VoterID] = len(records)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vote records: %w", err)
	}

	selRows, err := s.db.Query(`
		SELECT voter_id, candidate_id
		FROM vote_selection
		ORDER BY voter_id, ordinal
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}
	defer selRows.Close()

	for selRows.Next() {
		var voterID string
		var candidateID int
		if err := selRows.Scan(&voterID, &candidateID); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		if i, ok := index[voterID]; ok {
			records[i].CandidateIDs = append(records[i].CandidateIDs, candidateID)
		}
	}
	if err := selRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read selections: %w", err)
	}

	return records, nil
}

// EraseAll clears every vote record and selection. Candidates stay, so the
// leaderboard resets to zeros. Idempotent: erasing an empty store succeeds
// with a count of zero.
func (s *Store) EraseAll() (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM vote_selection`); err != nil {
		return 0, fmt.Errorf("failed to erase selections: %w", err)
	}
	res, err := tx.Exec(`DELETE FROM vote_record`)
	if err != nil {
		return 0, fmt.Errorf("failed to erase vote records: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit erase: %w", err)
	}

	erased, _ := res.RowsAffected()
	return int(erased), nil
}

// Candidates lists the roster by ascending id. activeOnly excludes removed
// candidates, which only matters for rankings and the public roster.
func (s *Store) Candidates(activeOnly bool) ([]models.Candidate, error) {
	query := `SELECT id, name, position, active FROM candidate ORDER BY id`
	if activeOnly {
		query = `SELECT id, name, position, active FROM candidate WHERE active ORDER BY id`
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Position, &c.Active); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return candidates, nil
}

// AddCandidate registers a new candidate. Re-adding an existing id,
// including a removed one, is rejected rather than silently reactivated.
func (s *Store) AddCandidate(c models.Candidate) error {
	_, err := s.db.Exec(`
		INSERT INTO candidate (id, name, position, active)
		VALUES ($1, $2, $3, TRUE)
	`, c.ID, c.Name, c.Position)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCandidateExists
		}
		return fmt.Errorf("failed to insert candidate: %w", err)
	}
	return nil
}

// RemoveCandidate deactivates a candidate. Existing selections are kept for
// audit but the candidate drops out of rankings and the public roster.
func (s *Store) RemoveCandidate(id int) error {
	res, err := s.db.Exec(`UPDATE candidate SET active = FALSE WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate candidate: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

// isUniqueViolation matches constraint errors from both supported drivers.
// SQLite reports "UNIQUE constraint failed: table.column", lib/pq reports
// "duplicate key value violates unique constraint".
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
