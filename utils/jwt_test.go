package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("prof-1", "helena@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parsed, err := ValidateToken(token)
	if err != nil || !parsed.Valid {
		t.Fatalf("ValidateToken: %v (valid=%v)", err, parsed != nil && parsed.Valid)
	}

	sub, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken: %v", err)
	}
	if sub != "prof-1" {
		t.Errorf("subject = %q, want %q", sub, "prof-1")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("prof-1", "helena@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expired token validated")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("some-token")
	if a != HashToken("some-token") {
		t.Fatal("hash of the same token differs between calls")
	}
	if a == HashToken("other-token") {
		t.Fatal("distinct tokens hash identically")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(a))
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("prof-1", "helena@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if parsed, err := ValidateToken(tampered); err == nil && parsed.Valid {
		t.Fatal("tampered token validated")
	}
}
