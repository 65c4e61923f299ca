// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Impact Token API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health and observability:

	GET /health
	GET /metrics

Voting (public):

	POST /votes       - Submit a vote
	POST /voter-token - Issue a persistent voter token

Results (public):

	GET /rankings   - Live leaderboard and total votes
	GET /candidates - Active candidate roster

Administration (requires X-Admin-Key):

	GET    /votes           - Voter roll
	GET    /votes/export    - CSV export
	DELETE /votes           - Erase all votes
	POST   /candidates      - Add candidate
	DELETE /candidates/{id} - Deactivate candidate

# Handler Initialization

The router builds the store and injects it into each handler:

	st := store.New(db)
	voteHandler := handlers.NewVoteHandler(st, cfg)
	resultsHandler := handlers.NewResultsHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg)
*/
package router
