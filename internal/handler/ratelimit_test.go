package handler

import (
	"testing"
	"time"
)

func newTestBucket(t *testing.T, rate, capacity float64) (*TokenBucket, *time.Time) {
	t.Helper()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tb := NewTokenBucket(t.Context(), rate, capacity)
	tb.now = func() time.Time { return now }
	return tb, &now
}

func TestTokenBucket_AllowsUpToCapacity(t *testing.T) {
	tb, _ := newTestBucket(t, 1, 3)

	for i := 0; i < 3; i++ {
		if !tb.Allow("test-key") {
			t.Fatalf("request %d should be allowed (bucket not yet empty)", i+1)
		}
	}
	if tb.Allow("test-key") {
		t.Fatal("4th request should be denied (bucket empty)")
	}
}

func TestTokenBucket_DifferentKeysAreIndependent(t *testing.T) {
	tb, _ := newTestBucket(t, 1, 1)

	if !tb.Allow("ip-a") {
		t.Fatal("ip-a first request should be allowed")
	}
	if tb.Allow("ip-a") {
		t.Fatal("ip-a second request should be denied")
	}
	if !tb.Allow("ip-b") {
		t.Fatal("ip-b first request should be allowed (independent bucket)")
	}
}

func TestTokenBucket_Refills(t *testing.T) {
	tb, now := newTestBucket(t, 2, 1)

	if !tb.Allow("k") {
		t.Fatal("first request should be allowed")
	}
	if tb.Allow("k") {
		t.Fatal("second request should be denied")
	}

	*now = now.Add(500 * time.Millisecond)
	if !tb.Allow("k") {
		t.Fatal("request after refill should be allowed")
	}
}

func TestTokenBucket_ZeroRateNeverRefills(t *testing.T) {
	tb, now := newTestBucket(t, 0, 2)

	tb.Allow("k")
	tb.Allow("k")
	*now = now.Add(time.Hour)
	if tb.Allow("k") {
		t.Fatal("third request should be denied (no refill)")
	}
}

func TestTokenBucket_SweepDropsStaleKeys(t *testing.T) {
	tb, now := newTestBucket(t, 1, 1)

	tb.Allow("old")
	*now = now.Add(staleAfter + time.Second)
	tb.Allow("fresh")

	tb.sweep()
	if got := tb.size(); got != 1 {
		t.Fatalf("expected 1 bucket after sweep, got %d", got)
	}
}
