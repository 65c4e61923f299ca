// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the system of record for Impact Token votes.

It owns the vote_record, vote_selection, and candidate tables and is the
only writer; everything the handlers serve (leaderboard, voter roll, CSV)
is derived from it on read.

# Deduplication

HasVoted is an advisory pre-check. The real guarantee lives in Append: the
UNIQUE constraint on vote_record.source_identity turns the dedup-check-then-
write into a single atomic insert, so concurrent submissions for one
identity can never both succeed:

	err := st.Append(rec)
	if errors.Is(err, store.ErrAlreadyVoted) {
		// 403 to the caller
	}

# Tallies

Rankings and TotalVotes recompute from the selection table on every call.
There is no stored counter to keep consistent, which is what makes tally
drift impossible by construction.

# Candidate administration

AddCandidate and RemoveCandidate manage the roster. Removal deactivates the
candidate: historical selections stay for audit, but the candidate leaves
the rankings and the public roster.
*/
package store
