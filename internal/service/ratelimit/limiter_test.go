package ratelimit

import (
	"testing"
	"time"
)

func TestAllowExhaustsBucket(t *testing.T) {
	l := New(2, 0)
	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("expected first two requests to pass")
	}
	if l.Allow("a") {
		t.Fatal("expected third request to be limited")
	}
	// other keys have their own bucket
	if !l.Allow("b") {
		t.Fatal("expected fresh key to pass")
	}
}

func TestAllowRefills(t *testing.T) {
	l := New(1, 10)
	now := time.Now()
	l.now = func() time.Time { return now }

	if !l.Allow("a") {
		t.Fatal("expected first request to pass")
	}
	if l.Allow("a") {
		t.Fatal("expected empty bucket")
	}

	now = now.Add(200 * time.Millisecond) // 2 tokens refilled, capped at 1
	if !l.Allow("a") {
		t.Fatal("expected refill to allow request")
	}
	if l.Allow("a") {
		t.Fatal("capacity cap ignored")
	}
}
