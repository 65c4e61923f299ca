// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/impact-tokens/models"
	"github.com/danielhkuo/impact-tokens/store"
	"github.com/danielhkuo/impact-tokens/testutil"
)

// TestConcurrentSameIdentitySubmissions hammers the submit endpoint with
// one voter identity from many goroutines. Exactly one submission may win;
// the rest must see ALREADY_VOTED, and the tally must reflect a single
// ballot no matter how the race interleaves.
func TestConcurrentSameIdentitySubmissions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	testutil.SeedTestCandidates(t, conn)

	st := store.New(conn)
	cfg := testutil.GetTestConfig()
	votes := NewVoteHandler(st, cfg)

	const attempts = 10
	var accepted, rejected atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/votes", map[string]any{
				"name":       "Ann",
				"candidates": []int{1, 2},
			}, map[string]string{"X-Voter-Token": "shared-token"})
			w := httptest.NewRecorder()
			votes.Submit(w, req)

			switch w.Code {
			case http.StatusCreated:
				accepted.Add(1)
			case http.StatusForbidden:
				var resp models.VoteResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Reason != models.ReasonAlreadyVoted {
					t.Errorf("Expected ALREADY_VOTED, got %s", resp.Reason)
				}
				rejected.Add(1)
			default:
				t.Errorf("Unexpected status %d: %s", w.Code, w.Body.String())
			}
		}()
	}
	wg.Wait()

	if accepted.Load() != 1 {
		t.Errorf("Expected exactly 1 accepted submission, got %d", accepted.Load())
	}
	if rejected.Load() != attempts-1 {
		t.Errorf("Expected %d rejections, got %d", attempts-1, rejected.Load())
	}

	var records, selections int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote_record`).Scan(&records); err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	if records != 1 {
		t.Errorf("Expected 1 vote record, got %d", records)
	}
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote_selection`).Scan(&selections); err != nil {
		t.Fatalf("Failed to count selections: %v", err)
	}
	if selections != 2 {
		t.Errorf("Expected 2 selections, got %d", selections)
	}
}

// TestConcurrentDistinctVoters runs many different identities in parallel
// and checks none of them interferes with another.
func TestConcurrentDistinctVoters(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	testutil.SeedTestCandidates(t, conn)

	st := store.New(conn)
	cfg := testutil.GetTestConfig()
	votes := NewVoteHandler(st, cfg)
	results := NewResultsHandler(st, cfg)

	const voters = 12
	var wg sync.WaitGroup

	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/votes", map[string]any{
				"candidate": 1 + n%5,
			}, map[string]string{"X-Voter-Token": fmt.Sprintf("voter-%d", n)})
			w := httptest.NewRecorder()
			votes.Submit(w, req)
			if w.Code != http.StatusCreated {
				t.Errorf("Voter %d got status %d: %s", n, w.Code, w.Body.String())
			}
		}(i)
	}
	wg.Wait()

	req := testutil.MakeRequest("GET", "/rankings", nil, nil)
	w := httptest.NewRecorder()
	results.Rankings(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.RankingsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.TotalVotes != voters {
		t.Errorf("Expected %d total votes, got %d", voters, resp.TotalVotes)
	}

	sum := 0
	for _, r := range resp.Rankings {
		sum += r.Votes
	}
	if sum != voters {
		t.Errorf("Expected per-candidate votes to sum to %d, got %d", voters, sum)
	}
}

// TestConcurrentVotesDuringErase interleaves submissions with an admin
// erase. Whatever the ordering, the store must stay consistent: every
// surviving record has its selections and every selection has its record.
func TestConcurrentVotesDuringErase(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	testutil.SeedTestCandidates(t, conn)

	st := store.New(conn)
	cfg := testutil.GetTestConfig()
	votes := NewVoteHandler(st, cfg)
	admin := NewAdminHandler(st, cfg)

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/votes", map[string]any{
				"candidates": []int{1, 2},
			}, map[string]string{"X-Voter-Token": fmt.Sprintf("erase-race-%d", n)})
			w := httptest.NewRecorder()
			votes.Submit(w, req)
		}(i)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		req := testutil.MakeRequest("DELETE", "/votes", nil, adminHeaders())
		w := httptest.NewRecorder()
		admin.EraseAll(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}()
	wg.Wait()

	// Referential integrity holds regardless of interleaving
	var orphans int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM vote_selection s
		WHERE NOT EXISTS (SELECT 1 FROM vote_record r WHERE r.voter_id = s.voter_id)
	`).Scan(&orphans)
	if err != nil {
		t.Fatalf("Failed to check orphans: %v", err)
	}
	if orphans != 0 {
		t.Errorf("Expected no orphaned selections, got %d", orphans)
	}

	var records, selections int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote_record`).Scan(&records); err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote_selection`).Scan(&selections); err != nil {
		t.Fatalf("Failed to count selections: %v", err)
	}
	if selections != records*2 {
		t.Errorf("Expected 2 selections per record, got %d records and %d selections", records, selections)
	}
}
