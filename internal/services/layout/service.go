package layout

//go:generate mockgen -destination=mock/mock_service.go -package=mocklayout -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/dungeon-layout/internal/dice"
	domain "github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
	dnderr "github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/KirkDiggler/dungeon-layout/internal/events"
	"github.com/KirkDiggler/dungeon-layout/internal/generator"
	"github.com/KirkDiggler/dungeon-layout/internal/repositories/layouts"
	"github.com/KirkDiggler/dungeon-layout/internal/uuid"
)

// Service generates layouts and keeps them in a repository
type Service interface {
	// CreateLayout generates and stores a new layout
	CreateLayout(ctx context.Context, input *CreateLayoutInput) (*domain.Layout, error)

	// GetLayout retrieves a stored layout by ID
	GetLayout(ctx context.Context, id string) (*domain.Layout, error)

	// RegenerateLayout reruns generation with the stored config and replaces the
	// stored layout wholesale under the same ID
	RegenerateLayout(ctx context.Context, id string, input *RegenerateLayoutInput) (*domain.Layout, error)

	DeleteLayout(ctx context.Context, id string) error

	// ListLayouts returns stored layouts, oldest first
	ListLayouts(ctx context.Context) ([]*domain.Layout, error)
}

// CreateLayoutInput contains data for generating a layout
type CreateLayoutInput struct {
	Config *domain.Config // Optional (service defaults if nil)
	Seed   *int64         // Optional (random if nil)
}

// RegenerateLayoutInput contains data for regenerating a stored layout
type RegenerateLayoutInput struct {
	Seed *int64 // Optional (random if nil)
}

// RollerFactory builds the random source for one run
type RollerFactory func(seed int64) dice.Roller

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    layouts.Repository // Required
	UUIDGenerator uuid.Generator     // Optional
	Defaults      *domain.Config     // Optional (domain.DefaultConfig if nil)
	EventBus      *events.Bus        // Optional
	RetryBudget   int                // Optional
	RollerFactory RollerFactory      // Optional (seeded math/rand roller)
	SeedSource    func() int64       // Optional (dice.NewSeed)
}

type service struct {
	repository    layouts.Repository
	uuidGenerator uuid.Generator
	defaults      *domain.Config
	bus           *events.Bus
	retryBudget   int
	newRoller     RollerFactory
	newSeed       func() int64
}

// NewService creates a new layout service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
		defaults:      cfg.Defaults.Clone(),
		bus:           cfg.EventBus,
		retryBudget:   cfg.RetryBudget,
		newRoller:     cfg.RollerFactory,
		newSeed:       cfg.SeedSource,
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.defaults == nil {
		svc.defaults = domain.DefaultConfig()
	}
	if svc.newRoller == nil {
		svc.newRoller = func(seed int64) dice.Roller {
			return dice.NewRandomRoller(seed)
		}
	}
	if svc.newSeed == nil {
		svc.newSeed = dice.NewSeed
	}

	return svc
}

func (s *service) CreateLayout(ctx context.Context, input *CreateLayoutInput) (*domain.Layout, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	params := input.Config
	if params == nil {
		params = s.defaults
	}

	seed := s.pickSeed(input.Seed)
	l, err := s.generate(ctx, params, seed)
	if err != nil {
		return nil, err
	}

	l.ID = s.uuidGenerator.New()

	if err := s.repository.Create(ctx, l); err != nil {
		return nil, dnderr.Wrap(err, "failed to save layout").
			WithMeta("layout_id", l.ID)
	}

	log.Printf("Layout %s created: %d rooms, seed %d, truncated=%t", l.ID, l.RoomCount(), l.Seed, l.Truncated)
	return l, nil
}

func (s *service) GetLayout(ctx context.Context, id string) (*domain.Layout, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("layout ID is required")
	}

	l, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get layout %s", id)
	}
	return l, nil
}

func (s *service) RegenerateLayout(ctx context.Context, id string, input *RegenerateLayoutInput) (*domain.Layout, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("layout ID is required")
	}
	if input == nil {
		input = &RegenerateLayoutInput{}
	}

	existing, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get layout %s", id)
	}

	params := existing.Config
	if params == nil {
		params = s.defaults
	}

	l, err := s.generate(ctx, params, s.pickSeed(input.Seed))
	if err != nil {
		return nil, err
	}
	l.ID = existing.ID
	l.CreatedAt = existing.CreatedAt

	if err := s.repository.Update(ctx, l); err != nil {
		return nil, dnderr.Wrap(err, "failed to save regenerated layout").
			WithMeta("layout_id", id)
	}

	return l, nil
}

func (s *service) DeleteLayout(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("layout ID is required")
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return dnderr.Wrapf(err, "failed to delete layout %s", id)
	}
	return nil
}

func (s *service) ListLayouts(ctx context.Context) ([]*domain.Layout, error) {
	all, err := s.repository.List(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list layouts")
	}
	return all, nil
}

func (s *service) pickSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return s.newSeed()
}

// generate runs a fresh generator so concurrent requests never share state
func (s *service) generate(ctx context.Context, params *domain.Config, seed int64) (*domain.Layout, error) {
	g := generator.NewGenerator(&generator.Config{
		Roller:      s.newRoller(seed),
		EventBus:    s.bus,
		RetryBudget: s.retryBudget,
	})

	if err := g.Configure(params); err != nil {
		return nil, err
	}

	l, err := g.Generate(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to generate layout").
			WithMeta("seed", seed)
	}
	l.Seed = seed

	return l, nil
}
