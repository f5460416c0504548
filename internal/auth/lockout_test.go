package auth

import (
	"testing"
	"time"
)

func TestLockout_LocksAfterMaxFailures(t *testing.T) {
	l := NewLockout(LockoutConfig{
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	email := "user@example.com"
	for i := 0; i < 2; i++ {
		if locked, _ := l.RecordFailure(email); locked {
			t.Fatalf("locked after %d failures, want 3", i+1)
		}
	}

	locked, dur := l.RecordFailure(email)
	if !locked {
		t.Fatal("third failure should lock the account")
	}
	if dur != time.Minute {
		t.Errorf("lock duration = %v, want 1m", dur)
	}

	if isLocked, remaining := l.IsLocked(email); !isLocked || remaining <= 0 {
		t.Errorf("IsLocked = %v, %v; want locked with time remaining", isLocked, remaining)
	}
}

func TestLockout_SuccessClearsFailures(t *testing.T) {
	l := NewLockout(LockoutConfig{MaxFailedAttempts: 3})

	email := "user@example.com"
	l.RecordFailure(email)
	l.RecordFailure(email)
	l.RecordSuccess(email)

	if got := l.RemainingAttempts(email); got != 3 {
		t.Errorf("RemainingAttempts = %d, want 3 after success", got)
	}
	if locked, _ := l.RecordFailure(email); locked {
		t.Error("failure after reset should not lock")
	}
}

func TestLockout_ExponentialBackoff(t *testing.T) {
	l := NewLockout(LockoutConfig{
		MaxFailedAttempts: 1,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Hour,
	})

	email := "user@example.com"
	_, first := l.RecordFailure(email)
	_, second := l.RecordFailure(email)

	if first != time.Minute {
		t.Errorf("first lock = %v, want 1m", first)
	}
	if second != 2*time.Minute {
		t.Errorf("second lock = %v, want 2m", second)
	}
}

func TestLockout_UnknownAccount(t *testing.T) {
	l := NewLockout(DefaultLockoutConfig())

	if locked, _ := l.IsLocked("nobody@example.com"); locked {
		t.Error("unknown account should not be locked")
	}
	if got := l.RemainingAttempts("nobody@example.com"); got != 5 {
		t.Errorf("RemainingAttempts = %d, want 5", got)
	}
}
