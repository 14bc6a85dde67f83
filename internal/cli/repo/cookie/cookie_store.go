// Package cookie holds the primary, in-process location of the auth token:
// a "token" cookie with Path=/, Max-Age and SameSite=Lax, whose expiry is
// evaluated lazily on read.
package cookie

import (
	"net/http"
	"sync"
	"time"

	"HBnB/internal/cli/repo"
)

// Store keeps at most one token cookie.
type Store struct {
	mu     sync.Mutex
	cookie *http.Cookie
	now    func() time.Time
}

// New creates an empty store. A nil clock means time.Now.
func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{now: now}
}

// Set overwrites the cookie; it lapses after maxAge.
func (s *Store) Set(token string, maxAge time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cookie = &http.Cookie{
		Name:     repo.TokenKey,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		Expires:  s.now().Add(maxAge),
		SameSite: http.SameSiteLaxMode,
	}
}

// Get returns the token unless it is missing or lapsed. A lapsed cookie is dropped.
func (s *Store) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cookie == nil {
		return "", false
	}
	if !s.now().Before(s.cookie.Expires) {
		s.cookie = nil
		return "", false
	}
	return s.cookie.Value, true
}

// Delete drops the cookie.
func (s *Store) Delete() {
	s.mu.Lock()
	s.cookie = nil
	s.mu.Unlock()
}

// Cookie returns a copy of the current cookie, or nil.
func (s *Store) Cookie() *http.Cookie {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cookie == nil {
		return nil
	}
	c := *s.cookie
	return &c
}
