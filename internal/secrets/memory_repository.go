package secrets

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	entries map[int64]Entry
}

// NewMemoryRepository builds an in-memory entry store for tests and dev mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{nextID: 1, entries: make(map[int64]Entry)}
}

func (r *memoryRepository) List(_ context.Context, ownerID int64) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(ownerID, func(Entry) bool { return true }), nil
}

func (r *memoryRepository) Create(_ context.Context, entry Entry) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = r.nextID
	r.nextID++
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *memoryRepository) Update(_ context.Context, entry Entry) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.entries[entry.ID]
	if !ok || existing.OwnerID != entry.OwnerID {
		return Entry{}, ErrNotFound
	}
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *memoryRepository) Delete(_ context.Context, ownerID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.entries[id]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *memoryRepository) SearchByService(_ context.Context, ownerID int64, substring string) ([]Entry, error) {
	needle := strings.ToLower(substring)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(ownerID, func(e Entry) bool {
		return strings.Contains(strings.ToLower(e.Service), needle)
	}), nil
}

func (r *memoryRepository) collect(ownerID int64, match func(Entry) bool) []Entry {
	out := []Entry{}
	for _, e := range r.entries {
		if e.OwnerID == ownerID && match(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
