// Package favorites tracks the artists the user follows.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"ynot/storage"
)

const StorageKey = "favorites-storage"

// Store is an ordered set of artist ids.
type Store struct {
	mu  sync.RWMutex
	ids []int
	kv  storage.KV
	log *zap.Logger
}

type Option func(*Store)

func WithPersistence(kv storage.KV) Option {
	return func(s *Store) { s.kv = kv }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

func New(opts ...Option) *Store {
	s := &Store{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Add(ctx context.Context, artistID int) error {
	s.mu.Lock()
	if slices.Contains(s.ids, artistID) {
		s.mu.Unlock()
		return nil
	}
	s.ids = append(s.ids, artistID)
	snap := slices.Clone(s.ids)
	s.mu.Unlock()
	return s.save(ctx, snap)
}

func (s *Store) Remove(ctx context.Context, artistID int) error {
	s.mu.Lock()
	i := slices.Index(s.ids, artistID)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	snap := slices.Clone(s.ids)
	s.mu.Unlock()
	return s.save(ctx, snap)
}

// Toggle flips membership and reports whether artistID is now a favorite.
func (s *Store) Toggle(ctx context.Context, artistID int) (bool, error) {
	if s.IsFavorite(artistID) {
		return false, s.Remove(ctx, artistID)
	}
	return true, s.Add(ctx, artistID)
}

func (s *Store) IsFavorite(artistID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.ids, artistID)
}

func (s *Store) List() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ids)
}

// Replace swaps the whole set, dropping duplicates from ids.
func (s *Store) Replace(ctx context.Context, ids []int) error {
	dedup := make([]int, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(dedup, id) {
			dedup = append(dedup, id)
		}
	}
	s.mu.Lock()
	s.ids = dedup
	s.mu.Unlock()
	return s.save(ctx, slices.Clone(dedup))
}

func (s *Store) Clear(ctx context.Context) error {
	return s.Replace(ctx, nil)
}

func (s *Store) Restore(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}
	data, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("favorites: load: %w", err)
	}
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		s.log.Warn("discarding unreadable favorites", zap.Error(err))
		return s.Clear(ctx)
	}
	return s.Replace(ctx, ids)
}

func (s *Store) save(ctx context.Context, ids []int) error {
	if s.kv == nil {
		return nil
	}
	if len(ids) == 0 {
		return s.kv.Delete(ctx, StorageKey)
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("favorites: encode: %w", err)
	}
	return s.kv.Set(ctx, StorageKey, data)
}
