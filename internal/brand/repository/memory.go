package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dcastano/optica-inventory/internal/model"
)

// MemoryRepository is the in-memory brand store used for local development and
// tests; it stands in for the document-oriented backend of the original system.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]model.Brand
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]model.Brand)}
}

func (r *MemoryRepository) Create(_ context.Context, b *model.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Store a copy to avoid mutation through the caller's pointer.
	r.items[b.ID] = *b
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *MemoryRepository) FindByName(_ context.Context, name string) (*model.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.items {
		if strings.EqualFold(b.Name, name) {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindAll(_ context.Context, onlyActive bool) ([]model.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Brand, 0, len(r.items))
	for _, b := range r.items {
		if onlyActive && !b.Active {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, b *model.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[b.ID] = *b
	return nil
}

func (r *MemoryRepository) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return nil
	}
	b.Active = active
	b.UpdatedAt = time.Now()
	r.items[id] = b
	return nil
}
