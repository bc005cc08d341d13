package layouts

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
	dnderr "github.com/KirkDiggler/dungeon-layout/internal/errors"
)

type inMemoryRepository struct {
	mu           sync.RWMutex
	layouts      map[string]*layout.Layout
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a repository that keeps layouts in process memory
func NewInMemoryRepository(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = realTimeProvider{}
	}

	return &inMemoryRepository{
		layouts:      make(map[string]*layout.Layout),
		timeProvider: timeProvider,
	}
}

func (r *inMemoryRepository) Create(ctx context.Context, l *layout.Layout) error {
	if err := validate(l); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.layouts[l.ID]; exists {
		return dnderr.AlreadyExistsf("layout %s already exists", l.ID).
			WithMeta("layout_id", l.ID)
	}

	now := r.timeProvider.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now

	// Copy so later changes by the caller don't leak in
	r.layouts[l.ID] = l.Clone()
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*layout.Layout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, exists := r.layouts[id]
	if !exists {
		return nil, dnderr.NotFoundf("layout %s not found", id).
			WithMeta("layout_id", id)
	}

	return l.Clone(), nil
}

func (r *inMemoryRepository) Update(ctx context.Context, l *layout.Layout) error {
	if err := validate(l); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.layouts[l.ID]
	if !exists {
		return dnderr.NotFoundf("layout %s not found", l.ID).
			WithMeta("layout_id", l.ID)
	}

	if l.CreatedAt.IsZero() {
		l.CreatedAt = existing.CreatedAt
	}
	l.UpdatedAt = r.timeProvider.Now()

	r.layouts[l.ID] = l.Clone()
	return nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.layouts[id]; !exists {
		return dnderr.NotFoundf("layout %s not found", id).
			WithMeta("layout_id", id)
	}

	delete(r.layouts, id)
	return nil
}

func (r *inMemoryRepository) List(ctx context.Context) ([]*layout.Layout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*layout.Layout, 0, len(r.layouts))
	for _, l := range r.layouts {
		all = append(all, l.Clone())
	}
	sortOldestFirst(all)

	return all, nil
}

func validate(l *layout.Layout) error {
	if l == nil {
		return dnderr.InvalidArgument("layout cannot be nil")
	}
	if l.ID == "" {
		return dnderr.InvalidArgument("layout ID cannot be empty")
	}
	return nil
}

func sortOldestFirst(all []*layout.Layout) {
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
}
