package layouts

import (
	"context"
	"time"

	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mocklayouts -source=repository.go

// Repository stores finished layouts by id
type Repository interface {
	Create(ctx context.Context, l *layout.Layout) error
	Get(ctx context.Context, id string) (*layout.Layout, error)
	Update(ctx context.Context, l *layout.Layout) error
	Delete(ctx context.Context, id string) error

	// List returns every stored layout, oldest first
	List(ctx context.Context) ([]*layout.Layout, error)
}

// TimeProvider stamps CreatedAt and UpdatedAt
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
