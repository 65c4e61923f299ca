// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/impact-tokens/auth"
	"github.com/danielhkuo/impact-tokens/models"
)

// ValidationError is a submission rejection with a stable reason code.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Roster resolves raw candidate selections against the known candidates.
// Selections may name a candidate by integer id, by display name, or by the
// "Name - Position" label the original voting form submits.
type Roster struct {
	byID    map[int]models.Candidate
	byLabel map[string]int
}

func NewRoster(candidates []models.Candidate) *Roster {
	r := &Roster{
		byID:    make(map[int]models.Candidate, len(candidates)),
		byLabel: make(map[string]int, len(candidates)*2),
	}
	for _, c := range candidates {
		r.byID[c.ID] = c
		r.byLabel[strings.ToLower(c.Name)] = c.ID
		r.byLabel[strings.ToLower(c.Name+" - "+c.Position)] = c.ID
	}
	return r
}

// Normalize parses a raw submission payload into a canonical VoteRecord.
//
// The payload is the decoded request body. Candidate selections may arrive
// as a single "candidate" value, a "candidates" array, or indexed
// "candidate_0_id"-style keys; all three shapes are folded into one ordered
// selection list here so nothing downstream sees the duck-typed forms.
//
// Selections that resolve to no known candidate are dropped. A submission
// left with zero valid selections is rejected with NO_VALID_SELECTION; more
// than models.MaxSelections distinct selections is TOO_MANY_SELECTIONS.
//
// The timestamp is generated here, never trusted from the client, and the
// caller is expected to fill in SourceIdentity before the record is stored.
func Normalize(raw map[string]any, roster *Roster) (models.VoteRecord, *ValidationError) {
	selections, verr := collectSelections(raw)
	if verr != nil {
		return models.VoteRecord{}, verr
	}

	distinct := dedupeStrings(selections)
	if len(distinct) > models.MaxSelections {
		return models.VoteRecord{}, &ValidationError{
			Reason:  models.ReasonTooManySelections,
			Message: fmt.Sprintf("at most %d candidates may be selected, got %d", models.MaxSelections, len(distinct)),
		}
	}

	ids := resolveSelections(distinct, roster)
	if len(ids) == 0 {
		return models.VoteRecord{}, &ValidationError{
			Reason:  models.ReasonNoValidSelection,
			Message: "no selection matched a known candidate",
		}
	}

	return models.VoteRecord{
		VoterID:      auth.NewVoterID(),
		VoterName:    normalizeName(raw),
		VoterEmail:   emailField(raw),
		CandidateIDs: ids,
		CastAt:       time.Now().UTC(),
	}, nil
}

// normalizeName builds the voter's display name. A "name" field wins;
// otherwise first_name and last_name are joined. Empty after trimming
// means "Anonymous".
func normalizeName(raw map[string]any) string {
	name := strings.TrimSpace(stringField(raw, "name"))
	if name == "" {
		first := strings.TrimSpace(stringField(raw, "first_name"))
		last := strings.TrimSpace(stringField(raw, "last_name"))
		name = strings.TrimSpace(first + " " + last)
	}
	if name == "" {
		return "Anonymous"
	}
	return name
}

// emailField passes the email through as-is when present. No format
// validation: the original system accepted anything, and tightening that
// silently would change recorded data.
func emailField(raw map[string]any) *string {
	v, ok := raw["email"]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// collectSelections gathers raw selection tokens in submission order from
// whichever shape the client used. A payload with none of the selection
// fields at all is a MISSING_FIELD rejection, distinct from one whose
// selections simply don't resolve.
func collectSelections(raw map[string]any) ([]string, *ValidationError) {
	if v, ok := raw["candidates"]; ok {
		list, ok := v.([]any)
		if !ok {
			return nil, &ValidationError{
				Reason:  models.ReasonMissingField,
				Message: "candidates must be a list",
			}
		}
		return selectionTokens(list), nil
	}

	if v, ok := raw["candidate"]; ok {
		return selectionTokens([]any{v}), nil
	}

	// Indexed candidate_0_id keys, as submitted by one form variant.
	var indexed []string
	for i := 0; ; i++ {
		v, ok := raw[fmt.Sprintf("candidate_%d_id", i)]
		if !ok {
			break
		}
		indexed = append(indexed, selectionTokens([]any{v})...)
	}
	if indexed != nil {
		return indexed, nil
	}

	return nil, &ValidationError{
		Reason:  models.ReasonMissingField,
		Message: "candidate selection is required",
	}
}

// selectionTokens converts raw JSON values into trimmed string tokens,
// skipping empties (the form submits "" for the placeholder option).
func selectionTokens(values []any) []string {
	tokens := make([]string, 0, len(values))
	for _, v := range values {
		switch t := v.(type) {
		case string:
			s := strings.TrimSpace(t)
			if s != "" {
				tokens = append(tokens, s)
			}
		case float64:
			tokens = append(tokens, strconv.Itoa(int(t)))
		case int:
			tokens = append(tokens, strconv.Itoa(t))
		}
	}
	return tokens
}

func dedupeStrings(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		key := strings.ToLower(tok)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tok)
	}
	return out
}

// resolveSelections maps tokens to candidate ids, dropping the unknown ones
// and collapsing tokens that resolve to the same candidate. Order of first
// appearance is preserved.
func resolveSelections(tokens []string, roster *Roster) []int {
	seen := make(map[int]bool, len(tokens))
	ids := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		id, ok := resolveToken(tok, roster)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func resolveToken(tok string, roster *Roster) (int, bool) {
	if id, err := strconv.Atoi(tok); err == nil {
		_, known := roster.byID[id]
		return id, known
	}
	id, known := roster.byLabel[strings.ToLower(tok)]
	return id, known
}
