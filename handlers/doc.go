// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Impact Token API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - VoteHandler: vote submission and voter token issuance
  - ResultsHandler: leaderboard and candidate roster
  - AdminHandler: voter roll, CSV export, erase-all, candidate admin

Handlers are created via constructor functions that accept *store.Store
and Config:

	voteHandler := handlers.NewVoteHandler(st, cfg)

# Vote Submission

	POST /votes → Submit

The submission pipeline is: identity resolution (X-Voter-Token header or
salted IP hash) → dedup fast path → ballot normalization → atomic append.
Rejections are structured JSON with a stable reason code:

	{"success": false, "reason": "ALREADY_VOTED"}

A duplicate submission is 403; validation failures are 400; storage
failures are 500 and safe to retry because appends are all-or-nothing.

# Results

	GET /rankings   → live leaderboard plus total vote count
	GET /candidates → active roster

# Administration

Admin operations require the X-Admin-Key header (see the auth package):

	GET    /votes            → voter roll
	GET    /votes/export     → CSV export
	DELETE /votes            → erase all votes (idempotent)
	POST   /candidates       → add candidate
	DELETE /candidates/{id}  → deactivate candidate
*/
package handlers
