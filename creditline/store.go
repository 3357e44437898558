package creditline

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Store serves the credit lines owned by an account.
// Implementations must be safe for concurrent reads.
type Store interface {
	// OutgoingCreditLines returns every line whose Owner is alias.
	// An alias without lines yields an empty slice, not an error,
	// unless the store is configured otherwise.
	OutgoingCreditLines(ctx context.Context, alias string) ([]CreditLine, error)
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithStrict makes OutgoingCreditLines fail with ErrAccountNotFound for aliases
// that appear in no line, neither as owner nor as partner.
func WithStrict() MemoryOption {
	return func(s *MemoryStore) { s.strict = true }
}

// MemoryStore is an in-process Store guarded by an RWMutex.
type MemoryStore struct {
	mu       sync.RWMutex
	strict   bool
	byOwner  map[string][]CreditLine
	accounts map[string]struct{}
	ids      map[string]struct{}
}

// NewMemoryStore returns an empty store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		byOwner:  make(map[string][]CreditLine),
		accounts: make(map[string]struct{}),
		ids:      make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Add validates and stores lines. The whole batch is rejected if any line is
// invalid or reuses an ID already present.
func (s *MemoryStore) Add(lines ...CreditLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		if _, dup := s.ids[l.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidCreditLine, l.ID)
		}
		if _, dup := seen[l.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidCreditLine, l.ID)
		}
		seen[l.ID] = struct{}{}
	}

	for _, l := range lines {
		s.ids[l.ID] = struct{}{}
		s.accounts[l.Owner] = struct{}{}
		s.accounts[l.Partner] = struct{}{}
		owned := append(s.byOwner[l.Owner], l)
		sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })
		s.byOwner[l.Owner] = owned
	}

	return nil
}

// OutgoingCreditLines returns a copy of alias's lines ordered by ID.
func (s *MemoryStore) OutgoingCreditLines(ctx context.Context, alias string) ([]CreditLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.accounts[alias]; !ok && s.strict {
		return nil, fmt.Errorf("%w: %q", ErrAccountNotFound, alias)
	}
	owned := s.byOwner[alias]
	out := make([]CreditLine, len(owned))
	copy(out, owned)

	return out, nil
}

// Len returns the number of stored lines.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.ids)
}
