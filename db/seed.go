// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Roster is the candidate roster file format:
//
//	[[candidate]]
//	id = 1
//	name = "Alex Johnson"
//	position = "Team Lead"
type Roster struct {
	Candidates []RosterCandidate `toml:"candidate"`
}

type RosterCandidate struct {
	ID       int    `toml:"id"`
	Name     string `toml:"name"`
	Position string `toml:"position"`
}

// defaultRoster matches the roster of the original deployment.
var defaultRoster = []RosterCandidate{
	{ID: 1, Name: "Alex Johnson", Position: "Team Lead"},
	{ID: 2, Name: "Maria Garcia", Position: "Design Director"},
	{ID: 3, Name: "James Wilson", Position: "Tech Lead"},
	{ID: 4, Name: "Sarah Chen", Position: "Product Manager"},
	{ID: 5, Name: "David Brown", Position: "Marketing Head"},
}

// LoadRoster reads a TOML candidate roster file.
func LoadRoster(path string) (Roster, error) {
	var r Roster
	if _, err := toml.DecodeFile(path, &r); err != nil {
		return Roster{}, fmt.Errorf("failed to read roster %s: %w", path, err)
	}
	for _, c := range r.Candidates {
		if c.ID <= 0 || c.Name == "" {
			return Roster{}, fmt.Errorf("roster %s: every candidate needs a positive id and a name", path)
		}
	}
	return r, nil
}

// SeedCandidates inserts the roster when the candidate table is empty.
// An already-populated table is left untouched so re-seeding on restart
// never clobbers administrative changes. An empty roster falls back to the
// built-in default.
func SeedCandidates(db *sql.DB, roster []RosterCandidate) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM candidate`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count candidates: %w", err)
	}
	if count > 0 {
		return nil
	}

	if len(roster) == 0 {
		roster = defaultRoster
	}
	for _, c := range roster {
		_, err := db.Exec(`
			INSERT INTO candidate (id, name, position, active)
			VALUES ($1, $2, $3, TRUE)
		`, c.ID, c.Name, c.Position)
		if err != nil {
			return fmt.Errorf("failed to seed candidate %d: %w", c.ID, err)
		}
	}
	return nil
}
