// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"

	"github.com/danielhkuo/impact-tokens/models"
)

// Rankings derives the leaderboard from the selection table: one row per
// active candidate, sorted by votes descending with ties broken by
// ascending candidate id. Always recomputed on read, so it cannot drift
// from the records. Votes for removed candidates stay in storage but are
// excluded here.
func (s *Store) Rankings() ([]models.CandidateTally, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.position, COUNT(s.voter_id) AS votes
		FROM candidate c
		LEFT JOIN vote_selection s ON s.candidate_id = c.id
		WHERE c.active
		GROUP BY c.id, c.name, c.position
		ORDER BY votes DESC, c.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rankings: %w", err)
	}
	defer rows.Close()

	rankings := []models.CandidateTally{}
	for rows.Next() {
		var t models.CandidateTally
		if err := rows.Scan(&t.CandidateID, &t.Name, &t.Position, &t.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan ranking: %w", err)
		}
		rankings = append(rankings, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rankings: %w", err)
	}
	return rankings, nil
}

// TotalVotes counts selections for active candidates across all records.
// A voter awarding three candidates contributes three, matching the sum of
// the rankings' vote counts.
func (s *Store) TotalVotes() (int, error) {
	var total int
	err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM vote_selection s
		JOIN candidate c ON c.id = s.candidate_id
		WHERE c.active
	`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return total, nil
}
