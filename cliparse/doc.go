// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminKeySalt: Secret for admin key HMAC (required)
  - IdentitySalt: Secret for voter identity hashing (required)
  - RosterFile: Candidate roster TOML file (optional)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-r              Roster file
	--admin-salt    Admin key salt
	--identity-salt Identity hashing salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ROSTER_FILE    → -r
	ADMIN_KEY_SALT → --admin-salt
	IDENTITY_SALT  → --identity-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - ADMIN_KEY_SALT must be provided
  - IDENTITY_SALT must be provided

Configuration errors are fatal at startup; nothing is validated lazily
per request.
*/
package cliparse
