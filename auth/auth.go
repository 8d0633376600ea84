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
	"strconv"
	"strings"
)

var (
	ErrInvalidAdminKey  = errors.New("invalid admin key")
	ErrInvalidFormToken = errors.New("invalid form token")
)

// LeadArchiveKeyID is the fixed subject the lead-archive admin key is
// derived from. The key itself is HMAC(AdminKeySalt, LeadArchiveKeyID).
const LeadArchiveKeyID = "lead-archive"

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateAdminKey creates an HMAC-based admin key for a subject.
// Deterministic and verifiable, so the key never needs to be stored.
func GenerateAdminKey(subject, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(subject))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid for the subject
func ValidateAdminKey(subject, adminKey, salt string) error {
	expected := GenerateAdminKey(subject, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateFormToken derives a security token bound to the form-load instant.
// The token is handed to the client alongside the timestamp and verified on
// submission, so an automated poster cannot invent a matching pair.
func GenerateFormToken(formTimestampMs int64, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte("form:" + strconv.FormatInt(formTimestampMs, 10)))
	sum := h.Sum(nil)
	// First 18 bytes keep the hidden field short without losing strength
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum[:18]), "=")
}

// ValidateFormToken checks a submitted token against the submitted
// form-load timestamp using a constant-time comparison.
func ValidateFormToken(formTimestampMs int64, token, salt string) error {
	expected := GenerateFormToken(formTimestampMs, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidFormToken
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
