// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(16)
	if err != nil {
		t.Fatalf("GenerateID failed: %v", err)
	}
	if len(id) != 32 {
		t.Errorf("Expected 32 hex chars, got %d", len(id))
	}

	// Two IDs should differ
	id2, err := GenerateID(16)
	if err != nil {
		t.Fatalf("GenerateID failed: %v", err)
	}
	if id == id2 {
		t.Error("Expected distinct IDs")
	}
}

func TestAdminKeyRoundTrip(t *testing.T) {
	key := GenerateAdminKey(LeadArchiveKeyID, "test-salt")

	if key == "" {
		t.Fatal("Expected non-empty admin key")
	}
	if strings.Contains(key, "=") {
		t.Error("Admin key should not contain padding")
	}

	if err := ValidateAdminKey(LeadArchiveKeyID, key, "test-salt"); err != nil {
		t.Errorf("Valid key rejected: %v", err)
	}
	if err := ValidateAdminKey(LeadArchiveKeyID, key, "other-salt"); err == nil {
		t.Error("Key validated under wrong salt")
	}
	if err := ValidateAdminKey("other-subject", key, "test-salt"); err == nil {
		t.Error("Key validated for wrong subject")
	}
}

func TestAdminKeyDeterministic(t *testing.T) {
	a := GenerateAdminKey(LeadArchiveKeyID, "salt")
	b := GenerateAdminKey(LeadArchiveKeyID, "salt")
	if a != b {
		t.Error("Admin key should be deterministic for subject+salt")
	}
}

func TestFormTokenRoundTrip(t *testing.T) {
	const ts = int64(1735689600000)

	token := GenerateFormToken(ts, "form-salt")
	if token == "" {
		t.Fatal("Expected non-empty form token")
	}

	if err := ValidateFormToken(ts, token, "form-salt"); err != nil {
		t.Errorf("Valid token rejected: %v", err)
	}
	if err := ValidateFormToken(ts+1, token, "form-salt"); err == nil {
		t.Error("Token validated for different timestamp")
	}
	if err := ValidateFormToken(ts, token, "wrong-salt"); err == nil {
		t.Error("Token validated under wrong salt")
	}
	if err := ValidateFormToken(ts, "forged-token", "form-salt"); err == nil {
		t.Error("Forged token validated")
	}
}

func TestHashIP(t *testing.T) {
	hash := HashIP("192.168.1.1", "salt")
	if len(hash) != 16 {
		t.Errorf("Expected 16 hex chars, got %d", len(hash))
	}

	// Same input same hash, different input different hash
	if HashIP("192.168.1.1", "salt") != hash {
		t.Error("Hash should be deterministic")
	}
	if HashIP("192.168.1.2", "salt") == hash {
		t.Error("Different IPs should hash differently")
	}
	if HashIP("192.168.1.1", "salt2") == hash {
		t.Error("Different salts should hash differently")
	}
}
