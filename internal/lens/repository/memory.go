package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dcastano/optica-inventory/internal/apperr"
	"github.com/dcastano/optica-inventory/internal/filter"
	"github.com/dcastano/optica-inventory/internal/model"
)

// MemoryRepository is the in-memory lens store. The single mutex makes every
// read-modify-write section atomic, which is all DecrementStock needs.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]model.Lens
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]model.Lens)}
}

func (r *MemoryRepository) Create(_ context.Context, l *model.Lens) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[l.ID] = *l
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Lens, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *MemoryRepository) FindAll(_ context.Context, spec filter.Spec) ([]model.Lens, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Lens, 0, len(r.items))
	for _, l := range r.items {
		lens := l
		if spec.Matches(&lens) {
			out = append(out, lens)
		}
	}
	// Listing order: creation order, id as a deterministic tie-break.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, l *model.Lens) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[l.ID] = *l
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *MemoryRepository) IsCodeUnique(_ context.Context, code, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.items {
		if l.IdentificationCode == code && l.ID != excludeID {
			return false, nil
		}
	}
	return true, nil
}

func (r *MemoryRepository) DecrementStock(_ context.Context, id string) (*model.Lens, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: lens %s", apperr.ErrNotFound, id)
	}
	if l.QuantityOnHand <= 0 {
		return nil, fmt.Errorf("%w: lens %s has no stock left", apperr.ErrOutOfStock, id)
	}

	l.QuantityOnHand--
	if l.QuantityOnHand == 0 {
		l.Status = model.StatusSold
	}
	l.UpdatedAt = time.Now()
	r.items[id] = l
	return &l, nil
}
