package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	buildmodel "pcstore-backend/internal/domains/build/model"
	buildrepo "pcstore-backend/internal/domains/build/repository"
	"pcstore-backend/internal/domains/builder/model"
	product "pcstore-backend/internal/domains/product/model"
	productrepo "pcstore-backend/internal/domains/product/repository"
	"pcstore-backend/pkg/cache"
	"pcstore-backend/pkg/logger"
)

const (
	sessionKeyPrefix = "builder:session:"
	sessionTTL       = 24 * time.Hour
)

type builderService struct {
	productRepo productrepo.RepositoryInterface
	buildRepo   buildrepo.RepositoryInterface
	cache       cache.Cache
}

func NewBuilderService(
	productRepo productrepo.RepositoryInterface,
	buildRepo buildrepo.RepositoryInterface,
	cache cache.Cache,
) ServiceInterface {
	return &builderService{
		productRepo: productRepo,
		buildRepo:   buildRepo,
		cache:       cache,
	}
}

func (s *builderService) Slots() []model.SlotDef {
	return model.SlotDefs
}

func (s *builderService) StartSession(ctx context.Context) (*model.BuilderState, error) {
	session := model.NewSession()
	if err := s.persistSession(ctx, session); err != nil {
		return nil, err
	}

	logger.Debug("builder session started: " + session.ID)
	return deriveState(session), nil
}

func (s *builderService) GetSession(ctx context.Context, sessionID string) (*model.BuilderState, error) {
	session, err := s.fetchSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return deriveState(session), nil
}

func (s *builderService) SelectComponent(ctx context.Context, sessionID string, productID uuid.UUID) (*model.BuilderState, error) {
	session, err := s.fetchSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Step 1: the product must exist in the live catalog
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, model.ErrProductNotInCatalog
		}
		return nil, err
	}

	// Step 2: bind it into the matching slot
	if err := session.Selection.Select(p); err != nil {
		return nil, err
	}

	// Step 3: persist, then return the recomputed state
	session.UpdatedAt = time.Now()
	if err := s.persistSession(ctx, session); err != nil {
		return nil, err
	}
	return deriveState(session), nil
}

func (s *builderService) RemoveComponent(ctx context.Context, sessionID string, category product.Category) (*model.BuilderState, error) {
	session, err := s.fetchSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !model.IsSlotCategory(category) {
		return nil, model.ErrNotABuilderCategory
	}

	session.Selection.Remove(category)
	session.UpdatedAt = time.Now()
	if err := s.persistSession(ctx, session); err != nil {
		return nil, err
	}
	return deriveState(session), nil
}

func (s *builderService) SaveBuild(ctx context.Context, userID *uuid.UUID, req *buildmodel.SaveBuildRequest) (*buildmodel.Build, error) {
	// Authentication is checked before anything else so an anonymous save
	// attempt causes no reads or writes
	if userID == nil {
		return nil, model.ErrUnauthenticated
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	session, err := s.fetchSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Selection.BoundCount() == 0 {
		return nil, model.ErrEmptySelection
	}

	// Snapshot only the bound slots: id, name and the price actually paid
	components := buildmodel.ComponentMap{}
	for i := range session.Selection.Slots {
		slot := &session.Selection.Slots[i]
		if slot.Product == nil {
			continue
		}
		components[slot.Category] = buildmodel.BuildComponent{
			ID:    slot.Product.ID,
			Name:  slot.Product.Name,
			Price: slot.Product.EffectivePrice(),
		}
	}

	now := time.Now()
	build := &buildmodel.Build{
		ID:          uuid.New(),
		UserID:      *userID,
		Name:        req.Name,
		Description: req.Description,
		Components:  components,
		TotalPrice:  TotalPrice(session.Selection),
		IsPublic:    false,
		LikesCount:  0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.buildRepo.Create(ctx, build); err != nil {
		return nil, err
	}

	logger.Info("build saved", map[string]interface{}{
		"build_id":   build.ID.String(),
		"user_id":    userID.String(),
		"components": len(components),
	})
	return build, nil
}

func (s *builderService) LoadBuild(ctx context.Context, userID *uuid.UUID, buildID uuid.UUID) (*model.LoadResult, error) {
	build, err := s.buildRepo.GetByID(ctx, buildID)
	if err != nil {
		return nil, err
	}

	// Private builds are only visible to their owner; reported as not found
	// so existence does not leak
	if !build.IsPublic && (userID == nil || *userID != build.UserID) {
		return nil, buildmodel.ErrBuildNotFound
	}

	session := model.NewSession()
	missing := []product.Category{}

	for _, cat := range model.SlotCategories() {
		comp, ok := build.Components[cat]
		if !ok {
			continue
		}

		p, err := s.productRepo.GetByID(ctx, comp.ID)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				missing = append(missing, cat)
				continue
			}
			return nil, err
		}
		// A product recategorized since the save no longer fits its old slot
		if p.Category != cat {
			missing = append(missing, cat)
			continue
		}
		if err := session.Selection.Select(p); err != nil {
			return nil, err
		}
	}

	if err := s.persistSession(ctx, session); err != nil {
		return nil, err
	}

	return &model.LoadResult{
		State:             deriveState(session),
		BuildID:           build.ID,
		Name:              build.Name,
		SavedTotalPrice:   build.TotalPrice,
		MissingComponents: missing,
	}, nil
}

func (s *builderService) ListComponents(ctx context.Context, category product.Category) ([]product.Product, error) {
	if !model.IsSlotCategory(category) {
		return nil, model.ErrNotABuilderCategory
	}
	return s.productRepo.ListByCategories(ctx, []product.Category{category})
}

// deriveState recomputes the full client view from a session. Issues and the
// total are always derived from the current selection, never stored.
func deriveState(session *model.Session) *model.BuilderState {
	slots := make([]model.SlotState, len(model.SlotDefs))
	for i, def := range model.SlotDefs {
		slots[i] = model.SlotState{
			Category: def.Category,
			Label:    def.Label,
			Required: def.Required,
			Product:  session.Selection.Product(def.Category),
		}
	}

	issues := CheckCompatibility(session.Selection)
	hasErrors := false
	for _, is := range issues {
		if is.Severity == model.SeverityError {
			hasErrors = true
			break
		}
	}

	return &model.BuilderState{
		SessionID:  session.ID,
		Slots:      slots,
		Issues:     issues,
		TotalPrice: TotalPrice(session.Selection),
		HasErrors:  hasErrors,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *builderService) persistSession(ctx context.Context, session *model.Session) error {
	if err := s.cache.Set(ctx, sessionKey(session.ID), session, sessionTTL); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (s *builderService) fetchSession(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	found, err := s.cache.Get(ctx, sessionKey(id), &session)
	if err != nil {
		return nil, fmt.Errorf("fetch session: %w", err)
	}
	if !found {
		return nil, model.ErrSessionNotFound
	}

	// Typed specs do not survive serialization; re-derive them so the
	// compatibility rules see the same view as a fresh catalog read
	session.Selection.Reparse()
	return &session, nil
}
