// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"log/slog"
	"sync"
	"time"
)

// Lockout tracks failed login attempts per account and locks accounts with
// exponential backoff. State is in-memory; a restart clears it.
type Lockout struct {
	mu       sync.RWMutex
	accounts map[string]*attemptRecord

	maxFailed int           // lock after this many failures
	baseLock  time.Duration // base lockout, doubles with each lockout
	window    time.Duration // window to count failures in
}

type attemptRecord struct {
	count       int
	firstFailed time.Time
	lockedUntil time.Time
	lockouts    int
}

// LockoutConfig holds configuration for Lockout.
type LockoutConfig struct {
	MaxFailedAttempts int
	LockoutDuration   time.Duration
	AttemptWindow     time.Duration
}

// DefaultLockoutConfig returns sensible defaults.
func DefaultLockoutConfig() LockoutConfig {
	return LockoutConfig{
		MaxFailedAttempts: 5,
		LockoutDuration:   15 * time.Minute,
		AttemptWindow:     15 * time.Minute,
	}
}

// NewLockout creates a Lockout and starts its background cleanup.
func NewLockout(cfg LockoutConfig) *Lockout {
	if cfg.MaxFailedAttempts <= 0 {
		cfg.MaxFailedAttempts = 5
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = 15 * time.Minute
	}
	if cfg.AttemptWindow <= 0 {
		cfg.AttemptWindow = 15 * time.Minute
	}

	l := &Lockout{
		accounts:  make(map[string]*attemptRecord),
		maxFailed: cfg.MaxFailedAttempts,
		baseLock:  cfg.LockoutDuration,
		window:    cfg.AttemptWindow,
	}
	go l.cleanup()
	return l
}

// IsLocked reports whether the account is currently locked and for how much
// longer.
func (l *Lockout) IsLocked(email string) (bool, time.Duration) {
	l.mu.RLock()
	rec, exists := l.accounts[email]
	l.mu.RUnlock()

	if !exists {
		return false, 0
	}
	if time.Now().Before(rec.lockedUntil) {
		return true, time.Until(rec.lockedUntil)
	}
	return false, 0
}

// RecordFailure records a failed login. Returns (locked, lockDuration) if
// this failure locked the account.
func (l *Lockout) RecordFailure(email string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	rec, exists := l.accounts[email]

	if !exists {
		l.accounts[email] = &attemptRecord{count: 1, firstFailed: now}
		return false, 0
	}

	// Reset the counter once the window has passed.
	if now.Sub(rec.firstFailed) > l.window {
		rec.count = 1
		rec.firstFailed = now
		return false, 0
	}

	rec.count++
	if rec.count < l.maxFailed {
		return false, 0
	}

	lockDuration := l.baseLock
	for i := 0; i < rec.lockouts; i++ {
		lockDuration *= 2
		if lockDuration > 24*time.Hour {
			lockDuration = 24 * time.Hour
			break
		}
	}

	rec.lockedUntil = now.Add(lockDuration)
	rec.lockouts++
	rec.count = 0

	slog.Warn("account locked after repeated failed logins",
		"email", email,
		"lockouts", rec.lockouts,
		"duration", lockDuration,
	)
	return true, lockDuration
}

// RecordSuccess clears failure tracking for an account.
func (l *Lockout) RecordSuccess(email string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.accounts, email)
}

// RemainingAttempts returns how many failures remain before lockout.
func (l *Lockout) RemainingAttempts(email string) int {
	l.mu.RLock()
	rec, exists := l.accounts[email]
	l.mu.RUnlock()

	if !exists || time.Since(rec.firstFailed) > l.window {
		return l.maxFailed
	}
	remaining := l.maxFailed - rec.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (l *Lockout) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.removeStale()
	}
}

func (l *Lockout) removeStale() {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for email, rec := range l.accounts {
		if now.After(rec.lockedUntil) && now.Sub(rec.firstFailed) > l.window {
			delete(l.accounts, email)
		}
	}
}
