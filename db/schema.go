// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is restricted to the dialect shared by SQLite and PostgreSQL;
// timestamps are always supplied by the application, never by column
// defaults.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Candidates eligible to receive Impact Tokens. Removal deactivates rather
-- than deletes so historical selections stay intact for audit.
CREATE TABLE IF NOT EXISTS candidate (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    position TEXT NOT NULL,
    active BOOLEAN NOT NULL DEFAULT TRUE
);

-- One record per voter identity. The UNIQUE constraint on source_identity
-- is the serialization point for duplicate-vote prevention.
CREATE TABLE IF NOT EXISTS vote_record (
    voter_id TEXT PRIMARY KEY,
    source_identity TEXT NOT NULL UNIQUE,
    voter_name TEXT NOT NULL,
    voter_email TEXT,
    cast_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_record_cast_at ON vote_record(cast_at);

-- Individual candidate selections of a record, ordered by ordinal.
CREATE TABLE IF NOT EXISTS vote_selection (
    voter_id TEXT NOT NULL REFERENCES vote_record(voter_id) ON DELETE CASCADE,
    candidate_id INTEGER NOT NULL REFERENCES candidate(id),
    ordinal INTEGER NOT NULL,
    PRIMARY KEY (voter_id, candidate_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_selection_candidate ON vote_selection(candidate_id);
`
