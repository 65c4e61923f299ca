// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddCandidateRequest: id, name, position

Vote submissions are intentionally not a fixed struct: the front end sends
candidate selections in several shapes (single value, array, indexed keys),
so the body is decoded into a map and normalized by the ballot package.

# Response Types

Types for JSON responses:

  - VoteResponse: success, voterId, message / reason
  - IssueTokenResponse: voter_token
  - RankingsResponse: rankings, total_votes
  - EraseAllResponse: erased, message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Candidate: eligible vote recipient with stable integer id
  - VoteRecord: one Impact Token award, immutable once written
  - CandidateTally: derived leaderboard row
  - VoterRow: voter roll line for the dashboard and CSV export

# Constants

Rejection reason codes:

	ReasonAlreadyVoted      = "ALREADY_VOTED"
	ReasonMissingField      = "MISSING_FIELD"
	ReasonMissingIdentity   = "MISSING_IDENTITY"
	ReasonTooManySelections = "TOO_MANY_SELECTIONS"
	ReasonNoValidSelection  = "NO_VALID_SELECTION"
	ReasonStorageFailure    = "STORAGE_FAILURE"

Selection bound:

	MaxSelections = 5
*/
package models
