package services

import (
	"sync"
	"time"
)

const (
	maxLoginAttempts = 5
	loginLockWindow  = 15 * time.Minute
)

type attemptState struct {
	count       int
	lockedUntil time.Time
}

// LoginLimiter blocks an identifier after repeated failed logins. State is
// in-memory and resets on restart, which matches the lockout window anyway.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptState
	Now      func() time.Time // test hook
}

func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{attempts: make(map[string]*attemptState)}
}

func (l *LoginLimiter) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Allowed reports whether the identifier may attempt a login and, when
// locked, how long remains on the lock.
func (l *LoginLimiter) Allowed(identifier string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	st, ok := l.attempts[identifier]
	if !ok {
		return true, 0
	}
	now := l.now()
	if !st.lockedUntil.IsZero() {
		if now.Before(st.lockedUntil) {
			return false, st.lockedUntil.Sub(now)
		}
		delete(l.attempts, identifier)
		return true, 0
	}
	return true, 0
}

// Failure records a failed attempt and starts the lock once the limit is hit.
func (l *LoginLimiter) Failure(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	st, ok := l.attempts[identifier]
	if !ok {
		st = &attemptState{}
		l.attempts[identifier] = st
	}
	st.count++
	if st.count >= maxLoginAttempts {
		st.lockedUntil = l.now().Add(loginLockWindow)
	}
}

// Success clears the counter for the identifier.
func (l *LoginLimiter) Success(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, identifier)
}
