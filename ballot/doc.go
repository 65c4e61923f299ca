// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot normalizes raw vote submissions into canonical vote records.

The voting front end has shipped several payload shapes over time: a single
"candidate" value (integer id or "Name - Position" label), a "candidates"
array, and indexed "candidate_0_id" keys. Normalize accepts all of them and
produces one ordered, de-duplicated selection list, so business logic and
storage only ever see a single shape.

# Usage

	candidates, _ := st.Candidates(true)
	rec, verr := ballot.Normalize(raw, ballot.NewRoster(candidates))
	if verr != nil {
		// verr.Reason is a stable code: MISSING_FIELD,
		// TOO_MANY_SELECTIONS, or NO_VALID_SELECTION
	}

# Rules

  - Name: "name" field, else first_name + last_name, trimmed;
    "Anonymous" when empty.
  - Email: passed through as-is, nil when absent. Not validated.
  - Selections: at most 5 distinct candidates; unknown ones are dropped;
    zero valid selections rejects the submission.
  - Timestamp: generated server-side at normalization time so votes can't
    be backdated.
  - Voter id: collision-resistant, generated here via the auth package.

Normalize is a pure function over its inputs apart from the clock and the
id generator; it never touches storage.
*/
package ballot
