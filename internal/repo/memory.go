package repo

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/phonebook/internal/domain"
)

// memoryEntryRepo is the in-memory implementation of EntryRepo.
// Entries are stored by value, so callers never share state with the map:
// a fetched entry can be modified freely and only lands in the store on Update.
type memoryEntryRepo struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]domain.Entry
}

// NewMemoryEntryRepo constructs an empty in-memory EntryRepo.
// It is safe for concurrent use. Contents are lost when the process exits.
func NewMemoryEntryRepo() EntryRepo {
	return &memoryEntryRepo{entries: make(map[uuid.UUID]domain.Entry)}
}

func (r *memoryEntryRepo) Add(_ context.Context, entry domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.ID()]; exists {
		return fmt.Errorf("repo.EntryRepo.Add: duplicate id %s: %w", entry.ID(), domain.ErrConflict)
	}
	r.entries[entry.ID()] = entry
	return nil
}

func (r *memoryEntryRepo) Update(_ context.Context, entry domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.ID()] = entry
	return nil
}

func (r *memoryEntryRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; !exists {
		return false, nil
	}
	delete(r.entries, id)
	return true, nil
}

func (r *memoryEntryRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	return entry, ok, nil
}

func (r *memoryEntryRepo) List(_ context.Context) ([]domain.Entry, error) {
	return r.collect(func(domain.Entry) bool { return true }), nil
}

func (r *memoryEntryRepo) ListByTag(_ context.Context, tag string) ([]domain.Entry, error) {
	return r.collect(func(e domain.Entry) bool { return e.Tag().Matches(tag) }), nil
}

// collect snapshots the entries accepted by keep under the read lock, then
// sorts outside it.
func (r *memoryEntryRepo) collect(keep func(domain.Entry) bool) []domain.Entry {
	r.mu.RLock()
	out := make([]domain.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	r.mu.RUnlock()

	sortByFullName(out)
	return out
}

// sortByFullName orders entries by "First Last" byte-wise. Ties fall back to
// ID so the order is deterministic across calls despite map iteration.
func sortByFullName(entries []domain.Entry) {
	slices.SortFunc(entries, func(a, b domain.Entry) int {
		if c := strings.Compare(a.Name().String(), b.Name().String()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
}
