// Package session keeps track of who is logged in.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"ynot/models"
	"ynot/storage"
)

// StorageKey is the key the session is persisted under.
const StorageKey = "auth-storage"

type persisted struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Store holds the current token and user. It has two states, anonymous and
// authenticated; Login and a successful CheckAuth lead to authenticated,
// Logout and a failed CheckAuth lead to anonymous.
type Store struct {
	mu            sync.RWMutex
	token         string
	user          *models.User
	authenticated bool

	kv  storage.KV
	now func() time.Time
	log *zap.Logger
}

type Option func(*Store)

// WithPersistence saves the session to kv on every change.
func WithPersistence(kv storage.KV) Option {
	return func(s *Store) { s.kv = kv }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns an anonymous store.
func New(opts ...Option) *Store {
	s := &Store{
		now: time.Now,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login replaces the token and user. The token is not inspected here;
// CheckAuth does that.
func (s *Store) Login(ctx context.Context, token string, user models.User) error {
	s.mu.Lock()
	s.token = token
	s.user = &user
	s.authenticated = true
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info("login", zap.Int("user_id", user.ID))
	return s.save(ctx, snap)
}

// Logout clears the session. Calling it while anonymous is harmless.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.clearLocked()
	s.mu.Unlock()

	return s.save(ctx, persisted{})
}

// CheckAuth recomputes authentication from the stored token. An expired or
// malformed token logs the user out. It never fails.
func (s *Store) CheckAuth(ctx context.Context) bool {
	s.mu.Lock()
	if s.token == "" {
		s.authenticated = false
		s.user = nil
		s.mu.Unlock()
		return false
	}
	err := Validate(s.token, s.now())
	if err == nil {
		s.authenticated = true
		s.mu.Unlock()
		return true
	}
	s.clearLocked()
	s.mu.Unlock()

	s.log.Info("session ended", zap.Error(err))
	if err := s.save(ctx, persisted{}); err != nil {
		s.log.Warn("failed to persist logout", zap.Error(err))
	}
	return false
}

// Restore loads a persisted session and checks it. A missing or unreadable
// record leaves the store anonymous.
func (s *Store) Restore(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}
	data, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("session: load: %w", err)
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn("discarding unreadable session", zap.Error(err))
		return s.Logout(ctx)
	}

	s.mu.Lock()
	s.token = p.Token
	s.user = p.User
	s.mu.Unlock()

	s.CheckAuth(ctx)
	return nil
}

// Token returns the current bearer token, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the logged in user.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated returns the state computed by the last Login, Logout or
// CheckAuth. Call CheckAuth to re-evaluate expiry.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Store) clearLocked() {
	s.token = ""
	s.user = nil
	s.authenticated = false
}

func (s *Store) snapshotLocked() persisted {
	p := persisted{Token: s.token}
	if s.user != nil {
		u := *s.user
		p.User = &u
	}
	return p
}

func (s *Store) save(ctx context.Context, p persisted) error {
	if s.kv == nil {
		return nil
	}
	if p.Token == "" {
		if err := s.kv.Delete(ctx, StorageKey); err != nil {
			return fmt.Errorf("session: delete: %w", err)
		}
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}
