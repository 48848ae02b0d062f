package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret")

	token, err := ts.Generate("alice")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	username, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if username != "alice" {
		t.Errorf("username = %q, want alice", username)
	}
}

func TestGenerateRequiresUsername(t *testing.T) {
	ts := NewTokenService("test-secret")
	if _, err := ts.Generate(""); err == nil {
		t.Error("Generate with empty username succeeded")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Generate("alice")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := NewTokenService("secret-b").Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	ts := NewTokenService("test-secret")
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ts.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	ts := NewTokenService("test-secret")
	ts.now = func() time.Time { return time.Now().Add(-2 * TokenTTL) }

	token, err := ts.Generate("alice")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := ts.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}
