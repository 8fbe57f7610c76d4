package service

import (
	"context"

	"github.com/google/uuid"

	buildmodel "pcstore-backend/internal/domains/build/model"
	"pcstore-backend/internal/domains/builder/model"
	product "pcstore-backend/internal/domains/product/model"
)

// ServiceInterface defines the PC builder operations
type ServiceInterface interface {
	// StartSession creates a fresh empty session and returns its state
	StartSession(ctx context.Context) (*model.BuilderState, error)

	// GetSession returns the derived state for an existing session
	GetSession(ctx context.Context, sessionID string) (*model.BuilderState, error)

	// SelectComponent binds a catalog product into the slot matching its
	// category, replacing any previous choice in that slot
	SelectComponent(ctx context.Context, sessionID string, productID uuid.UUID) (*model.BuilderState, error)

	// RemoveComponent clears a slot. Removing from an empty slot is a no-op.
	RemoveComponent(ctx context.Context, sessionID string, category product.Category) (*model.BuilderState, error)

	// SaveBuild persists the session's bound components as a named build
	// owned by userID. A nil userID fails before any write happens.
	SaveBuild(ctx context.Context, userID *uuid.UUID, req *buildmodel.SaveBuildRequest) (*buildmodel.Build, error)

	// LoadBuild restores a saved build into a fresh session, rebinding each
	// component against the live catalog
	LoadBuild(ctx context.Context, userID *uuid.UUID, buildID uuid.UUID) (*model.LoadResult, error)

	// ListComponents returns in-stock catalog products for one builder slot
	ListComponents(ctx context.Context, category product.Category) ([]product.Product, error)

	// Slots returns the fixed slot definitions in display order
	Slots() []model.SlotDef
}
