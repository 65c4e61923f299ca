// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/impact-tokens/cliparse"
	"github.com/danielhkuo/impact-tokens/db"
)

// Salts used by GetTestConfig
const (
	TestAdminSalt    = "test-admin-salt"
	TestIdentitySalt = "test-identity-salt"
)

var dbCounter atomic.Int64

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each call gets its own database. The pool is pinned to a single
// connection, which keeps the in-memory database alive and serializes
// writes the way a server-side database would.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: TestAdminSalt,
		IdentitySalt: TestIdentitySalt,
	}
}

// SeedTestCandidates inserts the standard five-candidate roster.
func SeedTestCandidates(t *testing.T, conn *sql.DB) {
	t.Helper()

	AddTestCandidate(t, conn, 1, "Alex Johnson", "Team Lead")
	AddTestCandidate(t, conn, 2, "Maria Garcia", "Design Director")
	AddTestCandidate(t, conn, 3, "James Wilson", "Tech Lead")
	AddTestCandidate(t, conn, 4, "Sarah Chen", "Product Manager")
	AddTestCandidate(t, conn, 5, "David Brown", "Marketing Head")
}

// AddTestCandidate inserts a single active candidate.
func AddTestCandidate(t *testing.T, conn *sql.DB, id int, name, position string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO candidate (id, name, position, active)
		VALUES ($1, $2, $3, TRUE)
	`, id, name, position)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}
}

// InsertTestVote writes a vote record with selections directly, bypassing
// the handler pipeline.
func InsertTestVote(t *testing.T, conn *sql.DB, voterID, identity, name string, candidateIDs ...int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote_record (voter_id, source_identity, voter_name, voter_email, cast_at)
		VALUES ($1, $2, $3, NULL, $4)
	`, voterID, identity, name, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	for i, id := range candidateIDs {
		_, err := conn.Exec(`
			INSERT INTO vote_selection (voter_id, candidate_id, ordinal)
			VALUES ($1, $2, $3)
		`, voterID, id, i)
		if err != nil {
			t.Fatalf("Failed to create test selection: %v", err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
