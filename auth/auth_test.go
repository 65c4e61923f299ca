// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestNewVoterID(t *testing.T) {
	id := NewVoterID()
	if !strings.HasPrefix(id, "P") {
		t.Errorf("Expected P prefix, got %q", id)
	}
	if len(id) != 9 {
		t.Errorf("Expected 9 characters, got %d (%q)", len(id), id)
	}
	if id != strings.ToUpper(id) {
		t.Errorf("Expected uppercase hex, got %q", id)
	}

	// Collision resistance over a modest batch
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewVoterID()
		if seen[id] {
			t.Fatalf("Duplicate voter id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestAdminKey(t *testing.T) {
	key := AdminKey("salt-one")

	// Deterministic for the same salt
	if key != AdminKey("salt-one") {
		t.Error("Expected admin key to be deterministic")
	}

	// Different salt, different key
	if key == AdminKey("salt-two") {
		t.Error("Expected different keys for different salts")
	}

	if strings.ContainsAny(key, "+/=") {
		t.Errorf("Expected URL-safe unpadded key, got %q", key)
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	key := AdminKey(salt)

	if err := ValidateAdminKey(key, salt); err != nil {
		t.Errorf("Expected valid key to pass, got %v", err)
	}

	if err := ValidateAdminKey("wrong-key", salt); !errors.Is(err, ErrInvalidAdminKey) {
		t.Errorf("Expected ErrInvalidAdminKey, got %v", err)
	}

	if err := ValidateAdminKey("", salt); !errors.Is(err, ErrInvalidAdminKey) {
		t.Errorf("Expected empty key to fail, got %v", err)
	}

	if err := ValidateAdminKey(key, "other-salt"); !errors.Is(err, ErrInvalidAdminKey) {
		t.Errorf("Expected key for other salt to fail, got %v", err)
	}
}

func TestGenerateVoterToken(t *testing.T) {
	token, err := GenerateVoterToken()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("Expected non-empty token")
	}
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("Expected URL-safe unpadded token, got %q", token)
	}

	other, err := GenerateVoterToken()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token == other {
		t.Error("Expected distinct tokens")
	}
}

func TestHashIdentity(t *testing.T) {
	h := HashIdentity("203.0.113.7", "salt")

	// Deterministic
	if h != HashIdentity("203.0.113.7", "salt") {
		t.Error("Expected deterministic hash")
	}

	// Sensitive to address and salt
	if h == HashIdentity("203.0.113.8", "salt") {
		t.Error("Expected different addresses to hash differently")
	}
	if h == HashIdentity("203.0.113.7", "other") {
		t.Error("Expected different salts to hash differently")
	}

	if len(h) != 16 {
		t.Errorf("Expected 16 hex characters, got %d (%q)", len(h), h)
	}
}
