// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// adminKeySubject is the fixed HMAC input the admin key is derived from.
const adminKeySubject = "impact-tokens-admin-v1"

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewVoterID creates the public id stamped on a recorded Impact Token.
// Format: "P" followed by 8 uppercase hex characters taken from a UUID,
// keeping the original single-letter-prefix shape while being
// collision-resistant.
func NewVoterID() string {
	u := uuid.New()
	return "P" + strings.ToUpper(hex.EncodeToString(u[:4]))
}

// AdminKey derives the dashboard admin key from the configured salt.
// Deterministic so operators can recompute it from the deployment secret
// without storing it anywhere.
func AdminKey(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(adminKeySubject))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks the provided admin key in constant time.
func ValidateAdminKey(adminKey, salt string) error {
	expected := AdminKey(salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateVoterToken creates a random secure token a client can persist
// locally and present on later submissions as its voter identity.
func GenerateVoterToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate voter token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// HashIdentity creates a one-way salted hash of a network address for use
// as a deduplication key. The raw address never reaches storage.
func HashIdentity(addr, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(addr))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
