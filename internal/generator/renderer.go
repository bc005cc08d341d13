package generator

//go:generate mockgen -destination=mock/mock_renderer.go -package=mockgenerator -source=renderer.go

import (
	"context"

	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
)

// Renderer is the collaborator that owns visual geometry for rooms and corridors.
// Both methods are called synchronously from inside a generation run.
type Renderer interface {
	// Materialize instantiates geometry for a newly created entity and returns
	// a handle the generator stores on the entity for later release
	Materialize(ctx context.Context, entity *layout.Entity) (layout.Handle, error)

	// Release destroys geometry from the previous run
	Release(ctx context.Context, handles []layout.Handle) error
}

// nopRenderer is used when no renderer is configured
type nopRenderer struct{}

func (nopRenderer) Materialize(context.Context, *layout.Entity) (layout.Handle, error) {
	return nil, nil
}

func (nopRenderer) Release(context.Context, []layout.Handle) error {
	return nil
}
