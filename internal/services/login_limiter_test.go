package services

import (
	"testing"
	"time"
)

func TestLimiterLocksAfterFiveFailures(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	l := NewLoginLimiter()
	l.Now = func() time.Time { return now }

	for i := 0; i < 4; i++ {
		l.Failure("user@example.com")
		if ok, _ := l.Allowed("user@example.com"); !ok {
			t.Fatalf("should still be allowed after %d failures", i+1)
		}
	}

	l.Failure("user@example.com")
	ok, wait := l.Allowed("user@example.com")
	if ok {
		t.Fatalf("fifth failure should lock the identifier")
	}
	if wait <= 0 || wait > 15*time.Minute {
		t.Fatalf("unexpected lock duration %v", wait)
	}
}

func TestLimiterUnlocksAfterWindow(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	l := NewLoginLimiter()
	l.Now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		l.Failure("9876543210")
	}
	if ok, _ := l.Allowed("9876543210"); ok {
		t.Fatalf("identifier should be locked")
	}

	now = now.Add(16 * time.Minute)
	if ok, _ := l.Allowed("9876543210"); !ok {
		t.Fatalf("lock should expire after the window")
	}
}

func TestLimiterSuccessResetsCounter(t *testing.T) {
	l := NewLoginLimiter()
	for i := 0; i < 4; i++ {
		l.Failure("user@example.com")
	}
	l.Success("user@example.com")
	l.Failure("user@example.com")
	if ok, _ := l.Allowed("user@example.com"); !ok {
		t.Fatalf("counter should reset after a successful login")
	}
}

func TestLimiterIsPerIdentifier(t *testing.T) {
	l := NewLoginLimiter()
	for i := 0; i < 5; i++ {
		l.Failure("a@example.com")
	}
	if ok, _ := l.Allowed("b@example.com"); !ok {
		t.Fatalf("other identifiers must stay unaffected")
	}
}
