package middleware

import (
	"testing"
	"time"
)

func TestDuplicateGuard(t *testing.T) {
	// speed up TTL for test
	SetDuplicateTTL(50 * time.Millisecond)
	ip := "203.0.113.7"
	payload := "alice|a@b.co|Hello"

	// First submission should pass
	if ok := DuplicateGuard(ip, payload); !ok {
		t.Fatalf("expected first submission to pass duplicate guard")
	}
	// Immediate identical repeat should block
	if ok := DuplicateGuard(ip, payload); ok {
		t.Fatalf("expected immediate duplicate to be blocked")
	}
	// Different payload should pass even within TTL
	if ok := DuplicateGuard(ip, payload+"!"); !ok {
		t.Fatalf("expected different payload to pass within TTL")
	}
	// After TTL, same payload should pass again
	time.Sleep(70 * time.Millisecond)
	if ok := DuplicateGuard(ip, payload); !ok {
		t.Fatalf("expected same payload to pass after TTL")
	}
}

func TestTakeTokenRefill(t *testing.T) {
	SetRateLimitConfig(50*time.Millisecond, 2)
	key := "198.51.100.9"

	if !takeToken(key) || !takeToken(key) {
		t.Fatalf("expected the first %d requests to pass", 2)
	}
	if takeToken(key) {
		t.Fatalf("expected request over capacity to be rejected")
	}
	time.Sleep(70 * time.Millisecond)
	if !takeToken(key) {
		t.Fatalf("expected tokens to refill after the window")
	}
}
