// Package cart holds the tickets the user intends to buy.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ynot/models"
	"ynot/storage"
)

// StorageKey is the key the cart lines are persisted under.
const StorageKey = "cart-storage"

// Store keeps at most one line per (id, type) pair, in insertion order.
type Store struct {
	mu     sync.RWMutex
	items  []models.CartItem
	isOpen bool

	kv  storage.KV
	log *zap.Logger
}

type Option func(*Store)

// WithPersistence saves the lines to kv on every change. The open flag is
// never persisted.
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

// AddItem bumps the quantity of the matching line by one, leaving its other
// fields untouched, or appends item with quantity 1. It opens the cart.
func (s *Store) AddItem(ctx context.Context, item models.CartItem) error {
	s.mu.Lock()
	if i := s.indexLocked(item.ID, item.Type); i >= 0 {
		s.items[i].Quantity++
	} else {
		item.Quantity = 1
		s.items = append(s.items, item)
	}
	s.isOpen = true
	snap := slices.Clone(s.items)
	s.mu.Unlock()

	return s.save(ctx, snap)
}

// RemoveItem drops the line matching both id and type, if any.
func (s *Store) RemoveItem(ctx context.Context, id string, typ models.TicketType) error {
	s.mu.Lock()
	i := s.indexLocked(id, typ)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	s.items = slices.Delete(s.items, i, i+1)
	snap := slices.Clone(s.items)
	s.mu.Unlock()

	return s.save(ctx, snap)
}

func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	return s.save(ctx, nil)
}

// ToggleCart flips the visibility flag and returns the new value.
func (s *Store) ToggleCart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
	return s.isOpen
}

func (s *Store) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOpen
}

// Items returns a copy of the lines.
func (s *Store) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Total is the sum of price times quantity over all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Restore loads persisted lines, replacing the current ones. Duplicate
// (id, type) pairs in the stored data are merged.
func (s *Store) Restore(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}
	data, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cart: load: %w", err)
	}

	var stored []models.CartItem
	if err := json.Unmarshal(data, &stored); err != nil {
		s.log.Warn("discarding unreadable cart", zap.Error(err))
		return s.ClearCart(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.items[:0:0]
	for _, it := range stored {
		if it.Quantity < 1 {
			continue
		}
		if i := s.indexLocked(it.ID, it.Type); i >= 0 {
			s.items[i].Quantity += it.Quantity
			if s.items[i].Pending == nil {
				s.items[i].Pending = it.Pending
			}
			continue
		}
		s.items = append(s.items, it)
	}
	return nil
}

// MarkPaid records that the provider took payment p for the matching line.
// The record is persisted with the line and survives until Settle.
func (s *Store) MarkPaid(ctx context.Context, id string, typ models.TicketType, p models.PendingPayment) error {
	s.mu.Lock()
	i := s.indexLocked(id, typ)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("cart: no line %s (%s)", id, typ)
	}
	s.items[i].Pending = &p
	snap := slices.Clone(s.items)
	s.mu.Unlock()

	return s.save(ctx, snap)
}

// Settle takes quantity confirmed tickets off the matching line and clears
// its pending payment. The line is dropped once nothing is left to buy.
func (s *Store) Settle(ctx context.Context, id string, typ models.TicketType, quantity int) error {
	s.mu.Lock()
	i := s.indexLocked(id, typ)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	s.items[i].Pending = nil
	s.items[i].Quantity -= quantity
	if s.items[i].Quantity < 1 {
		s.items = slices.Delete(s.items, i, i+1)
	}
	snap := slices.Clone(s.items)
	s.mu.Unlock()

	return s.save(ctx, snap)
}

func (s *Store) indexLocked(id string, typ models.TicketType) int {
	return slices.IndexFunc(s.items, func(it models.CartItem) bool {
		return it.ID == id && it.Type == typ
	})
}

func (s *Store) save(ctx context.Context, items []models.CartItem) error {
	if s.kv == nil {
		return nil
	}
	if len(items) == 0 {
		if err := s.kv.Delete(ctx, StorageKey); err != nil {
			return fmt.Errorf("cart: delete: %w", err)
		}
		return nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cart: encode: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("cart: save: %w", err)
	}
	return nil
}
