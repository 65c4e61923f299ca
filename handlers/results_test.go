// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/impact-tokens/models"
	"github.com/danielhkuo/impact-tokens/store"
	"github.com/danielhkuo/impact-tokens/testutil"
)

func TestRankings(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	testutil.SeedTestCandidates(t, conn)

	testutil.InsertTestVote(t, conn, "P00000001", "ip:a", "Ann", 4, 2)
	testutil.InsertTestVote(t, conn, "P00000002", "ip:b", "Bob", 4)

	handler := NewResultsHandler(store.New(conn), testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/rankings", nil, nil)
	w := httptest.NewRecorder()
	handler.Rankings(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.RankingsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 3 {
		t.Errorf("Expected 3 total votes, got %d", resp.TotalVotes)
	}
	if len(resp.Rankings) != 5 {
		t.Fatalf("Expected all 5 candidates in rankings, got %d", len(resp.Rankings))
	}
	if resp.Rankings[0].CandidateID != 4 || resp.Rankings[0].Votes != 2 {
		t.Errorf("Expected candidate 4 leading with 2 votes, got %+v", resp.Rankings[0])
	}
	// Zero-vote candidates still appear
	last := resp.Rankings[len(resp.Rankings)-1]
	if last.Votes != 0 {
		t.Errorf("Expected trailing candidate with 0 votes, got %+v", last)
	}
}

func TestRankingsEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	testutil.SeedTestCandidates(t, conn)

	handler := NewResultsHandler(store.New(conn), testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/rankings", nil, nil)
	w := httptest.NewRecorder()
	handler.Rankings(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.RankingsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 0 {
		t.Errorf("Expected 0 total votes, got %d", resp.TotalVotes)
	}
	if len(resp.Rankings) != 5 {
		t.Errorf("Expected 5 candidates, got %d", len(resp.Rankings))
	}
	// Ties at zero fall back to id order
	for i, r := range resp.Rankings {
		if r.CandidateID != i+1 {
			t.Errorf("Expected candidate %d at position %d, got %d", i+1, i, r.CandidateID)
		}
	}
}

func TestCandidates(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	testutil.SeedTestCandidates(t, conn)

	// Deactivated candidates stay off the voting form
	if _, err := conn.Exec(`UPDATE candidate SET active = FALSE WHERE id = 3`); err != nil {
		t.Fatalf("Failed to deactivate candidate: %v", err)
	}

	handler := NewResultsHandler(store.New(conn), testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/candidates", nil, nil)
	w := httptest.NewRecorder()
	handler.Candidates(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var candidates []models.Candidate
	testutil.AssertJSON(t, w, &candidates)

	if len(candidates) != 4 {
		t.Fatalf("Expected 4 active candidates, got %d", len(candidates))
	}
	for _, c := range candidates {
		if c.ID == 3 {
			t.Error("Expected deactivated candidate to be excluded")
		}
	}
	if candidates[0].Name != "Alex Johnson" || candidates[0].Position != "Team Lead" {
		t.Errorf("Unexpected first candidate: %+v", candidates[0])
	}
}
