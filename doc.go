// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Impact Token voting server.

Impact Tokens is a one-vote-per-person awards service: visitors give their
Impact Token to up to five candidates, duplicates are blocked per voter
identity (client token or network address), and a live leaderboard ranks
candidates by votes received.

# Starting the Server

The server reads configuration from environment variables (a local .env is
honored) or CLI flags:

	DATABASE_URL=votes.db ADMIN_KEY_SALT=... IDENTITY_SALT=... go run main.go

Or with flags:

	go run main.go -p 8080 -d votes.db -t sqlite

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC
  - IDENTITY_SALT (--identity-salt): Secret for voter identity hashing

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - ROSTER_FILE (-r): TOML candidate roster for first-run seeding

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (votes, results, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON/form helpers
  - models: Request/response types and reason codes
  - ballot: Submission normalization (the payload-shape adapter)
  - store: Vote records, dedup guard, and derived tallies
  - auth: Key derivation, voter ids, identity hashing
  - db: Schema creation and roster seeding
  - metrics: Prometheus collectors
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
