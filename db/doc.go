// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and candidate roster seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL sticks to the dialect shared by SQLite and PostgreSQL.

# Tables

  - candidate: Eligible vote recipients (deactivated, never deleted)
  - vote_record: One record per voter identity (UNIQUE source_identity)
  - vote_selection: Ordered candidate selections per record

# Relationships

	vote_record 1──* vote_selection
	candidate   1──* vote_selection

The UNIQUE constraint on vote_record.source_identity is what makes the
dedup-check-then-write atomic: concurrent submissions for one identity race
on the insert, and exactly one commit wins.

# Seeding

SeedCandidates populates the candidate table on first startup, either from
a TOML roster file loaded with LoadRoster or from the built-in default
roster. A non-empty table is never touched.
*/
package db
