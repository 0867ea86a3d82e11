package studioweb

import (
	"testing"
	"time"
)

func TestSubmissionLimiterBlocksAfterMax(t *testing.T) {
	limiter := NewSubmissionLimiter(2, 200*time.Millisecond)
	defer limiter.Stop()
	ip := "203.0.113.10"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first submission to be allowed")
	}
	if !limiter.Allow(ip) {
		t.Fatalf("expected second submission to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected third submission to be blocked")
	}
}

func TestSubmissionLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewSubmissionLimiter(1, 150*time.Millisecond)
	defer limiter.Stop()
	ip := "203.0.113.20"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first submission to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected second submission to be blocked")
	}

	time.Sleep(200 * time.Millisecond)
	if !limiter.Allow(ip) {
		t.Fatalf("expected submission after window to be allowed")
	}
}

func TestSubmissionLimiterIsPerIP(t *testing.T) {
	limiter := NewSubmissionLimiter(1, 200*time.Millisecond)
	defer limiter.Stop()

	if !limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be allowed")
	}
	if !limiter.Allow("203.0.113.31") {
		t.Fatalf("expected second ip to be allowed independently")
	}
	if limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be blocked after max")
	}
}

func TestSubmissionLimiterCheckDoesNotRecord(t *testing.T) {
	limiter := NewSubmissionLimiter(1, time.Minute)
	defer limiter.Stop()
	ip := "203.0.113.40"

	for i := 0; i < 3; i++ {
		if !limiter.Check(ip) {
			t.Fatalf("check %d should not consume the allowance", i)
		}
	}
	limiter.Record(ip)
	if limiter.Check(ip) {
		t.Fatalf("expected ip to be blocked after Record")
	}
	limiter.Stop()
	limiter.Stop()
}
