// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides key derivation, token generation, and identity hashing.

# Admin Key

The dashboard admin key uses HMAC-SHA256 over a fixed subject string:

	key := auth.AdminKey(salt)
	err := auth.ValidateAdminKey(key, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same salt always produces the same key, so validation needs no storage.

# Voter IDs

Every recorded vote gets a public voter id:

	id := auth.NewVoterID() // "P" + 8 uppercase hex chars

IDs are UUID-backed so collisions are not a practical concern, unlike the
4-digit scheme the original front end used.

# Voter Tokens

Voter tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateVoterToken()

A client that persists its token votes under that identity instead of its
network address.

# Identity Hashing

IP addresses are hashed before being used as deduplication keys:

	hash := auth.HashIdentity(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256; the raw address is
never stored.

# ID Generation

Random hex IDs for miscellaneous records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
