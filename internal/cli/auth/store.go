// Package auth owns the client credential: a primary cookie plus an optional
// durable store behind one Set/Get/Delete contract.
package auth

import (
	"errors"
	"sync"
	"time"

	"HBnB/internal/cli/repo"
	"HBnB/internal/cli/repo/cookie"

	"go.uber.org/zap"
)

// DefaultTTL is the token lifetime used when Set receives a non-positive max-age.
const DefaultTTL = 3600 * time.Second

// TokenStore is the credential contract the request layer depends on.
type TokenStore interface {
	Set(token string, maxAge time.Duration)
	Get() (string, bool)
	Delete()
}

// Store reads the cookie first and falls back to the durable store.
// All operations are best-effort: backend errors are logged, never returned.
type Store struct {
	mu      sync.Mutex
	cookie  *cookie.Store
	durable repo.TokenStore
	ttl     time.Duration
	now     func() time.Time
	log     *zap.SugaredLogger
}

var _ TokenStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for backend failures.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore creates a store. durable may be nil: the token then lives only in the cookie.
func NewStore(durable repo.TokenStore, ttl time.Duration, opts ...Option) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{durable: durable, ttl: ttl, now: time.Now, log: zap.NewNop().Sugar()}
	for _, o := range opts {
		o(s)
	}
	s.cookie = cookie.New(s.now)
	return s
}

// TTL returns the default token lifetime.
func (s *Store) TTL() time.Duration { return s.ttl }

// Set persists token for maxAge in every location, overwriting what was there.
func (s *Store) Set(token string, maxAge time.Duration) {
	if maxAge <= 0 {
		maxAge = s.ttl
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cookie.Set(token, maxAge)
	if s.durable == nil {
		return
	}
	rec := repo.StoredToken{Token: token, ExpiresAt: s.now().Add(maxAge).UTC()}
	if err := s.durable.Save(rec); err != nil {
		s.log.Warnw("token store: save failed", "error", err)
	}
}

// Get returns the current token. When only the durable store has a live token,
// the cookie is re-hydrated with the remaining lifetime so later reads agree.
func (s *Store) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tok, ok := s.cookie.Get(); ok {
		return tok, true
	}
	if s.durable == nil {
		return "", false
	}
	rec, err := s.durable.Load()
	if err != nil {
		if !errors.Is(err, repo.ErrNoToken) {
			s.log.Warnw("token store: load failed", "error", err)
		}
		return "", false
	}
	now := s.now()
	if rec.Expired(now) {
		s.log.Debugw("token store: stored token expired", "expires_at", rec.ExpiresAt)
		if err := s.durable.Clear(); err != nil {
			s.log.Warnw("token store: clear expired failed", "error", err)
		}
		return "", false
	}
	remaining := s.ttl
	if !rec.ExpiresAt.IsZero() {
		remaining = rec.ExpiresAt.Sub(now)
	}
	s.cookie.Set(rec.Token, remaining)
	return rec.Token, true
}

// Delete clears the token from every location. Safe to call repeatedly.
func (s *Store) Delete() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cookie.Delete()
	if s.durable == nil {
		return
	}
	if err := s.durable.Clear(); err != nil {
		s.log.Warnw("token store: clear failed", "error", err)
	}
}

// Authenticated reports whether a live token is present.
func (s *Store) Authenticated() bool {
	_, ok := s.Get()
	return ok
}
