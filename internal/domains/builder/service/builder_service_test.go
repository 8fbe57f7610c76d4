package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	buildmodel "pcstore-backend/internal/domains/build/model"
	"pcstore-backend/internal/domains/builder/model"
	product "pcstore-backend/internal/domains/product/model"
)

// memoryCache is an in-memory Cache that round-trips values through JSON,
// matching what the Redis implementation does to stored sessions.
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryCache) Ping(context.Context) error                          { return nil }
func (m *memoryCache) DeletePattern(context.Context, string) error         { return nil }
func (m *memoryCache) Exists(_ context.Context, key string) (bool, error)  { _, ok := m.data[key]; return ok, nil }
func (m *memoryCache) Expire(context.Context, string, time.Duration) error { return nil }
func (m *memoryCache) TTL(context.Context, string) (time.Duration, error)  { return 0, nil }

// fakeProductRepo serves products from a map keyed by id
type fakeProductRepo struct {
	products map[uuid.UUID]*product.Product
}

func newFakeProductRepo(products ...*product.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[uuid.UUID]*product.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) ListByCategories(_ context.Context, categories []product.Category) ([]product.Product, error) {
	out := []product.Product{}
	for _, p := range f.products {
		for _, cat := range categories {
			if p.Category == cat {
				out = append(out, *p)
			}
		}
	}
	return out, nil
}

func (f *fakeProductRepo) List(context.Context, *product.ProductFilter) ([]product.Product, int, error) {
	return nil, 0, nil
}
func (f *fakeProductRepo) ListFeatured(context.Context, int) ([]product.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetByIDs(context.Context, []uuid.UUID) ([]product.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetBySlug(context.Context, string) (*product.Product, error) {
	return nil, product.ErrProductNotFound
}
func (f *fakeProductRepo) Create(context.Context, *product.Product) error  { return nil }
func (f *fakeProductRepo) Update(context.Context, *product.Product) error  { return nil }
func (f *fakeProductRepo) Delete(context.Context, uuid.UUID) error         { return nil }
func (f *fakeProductRepo) SlugExists(context.Context, string, *uuid.UUID) (bool, error) {
	return false, nil
}

// fakeBuildRepo records writes so tests can assert on persistence behavior
type fakeBuildRepo struct {
	builds      map[uuid.UUID]*buildmodel.Build
	createCalls int
}

func newFakeBuildRepo() *fakeBuildRepo {
	return &fakeBuildRepo{builds: map[uuid.UUID]*buildmodel.Build{}}
}

func (f *fakeBuildRepo) Create(_ context.Context, b *buildmodel.Build) error {
	f.createCalls++
	cp := *b
	f.builds[b.ID] = &cp
	return nil
}

func (f *fakeBuildRepo) GetByID(_ context.Context, id uuid.UUID) (*buildmodel.Build, error) {
	b, ok := f.builds[id]
	if !ok {
		return nil, buildmodel.ErrBuildNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBuildRepo) ListPublic(context.Context, *buildmodel.BuildFilter) ([]*buildmodel.Build, int64, error) {
	return nil, 0, nil
}
func (f *fakeBuildRepo) ListByUser(context.Context, uuid.UUID) ([]*buildmodel.Build, error) {
	return nil, nil
}
func (f *fakeBuildRepo) Update(context.Context, *buildmodel.Build) error { return nil }
func (f *fakeBuildRepo) Delete(context.Context, uuid.UUID) error         { return nil }
func (f *fakeBuildRepo) Like(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}
func (f *fakeBuildRepo) Unlike(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (f *fakeBuildRepo) HasLiked(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}
func (f *fakeBuildRepo) CountLikes(context.Context, uuid.UUID) (int, error)     { return 0, nil }
func (f *fakeBuildRepo) SetLikesCount(context.Context, uuid.UUID, int) error    { return nil }
func (f *fakeBuildRepo) ListStaleLikeCounts(context.Context, int) ([]uuid.UUID, error) {
	return nil, nil
}
func (f *fakeBuildRepo) CreateComment(context.Context, *buildmodel.Comment) error { return nil }
func (f *fakeBuildRepo) ListComments(context.Context, uuid.UUID) ([]*buildmodel.Comment, error) {
	return nil, nil
}
func (f *fakeBuildRepo) GetComment(context.Context, uuid.UUID) (*buildmodel.Comment, error) {
	return nil, buildmodel.ErrCommentNotFound
}
func (f *fakeBuildRepo) DeleteComment(context.Context, uuid.UUID) error { return nil }

func newTestService(products ...*product.Product) (ServiceInterface, *fakeBuildRepo) {
	buildRepo := newFakeBuildRepo()
	svc := NewBuilderService(newFakeProductRepo(products...), buildRepo, newMemoryCache())
	return svc, buildRepo
}

func TestStartSession(t *testing.T) {
	svc, _ := newTestService()

	state, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, state.SessionID)
	assert.Len(t, state.Slots, 8)
	assert.Empty(t, state.Issues)
	assert.True(t, state.TotalPrice.IsZero())
	for _, slot := range state.Slots {
		assert.Nil(t, slot.Product)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	cpu := testProduct(product.CategoryCPU, map[string]interface{}{"socket": "AM5"})
	svc, _ := newTestService(cpu)
	ctx := context.Background()

	first, err := svc.StartSession(ctx)
	require.NoError(t, err)
	second, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectComponent(ctx, first.SessionID, cpu.ID)
	require.NoError(t, err)

	state, err := svc.GetSession(ctx, second.SessionID)
	require.NoError(t, err)
	assert.Nil(t, state.Slots[0].Product)
}

func TestGetSession_Unknown(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetSession(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestSelectComponent(t *testing.T) {
	cpu := testProduct(product.CategoryCPU, map[string]interface{}{"socket": "AM5"})
	cpu.Price = decimal.RequireFromString("299.99")
	svc, _ := newTestService(cpu)
	ctx := context.Background()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)

	state, err := svc.SelectComponent(ctx, start.SessionID, cpu.ID)
	require.NoError(t, err)
	require.NotNil(t, state.Slots[0].Product)
	assert.Equal(t, cpu.ID, state.Slots[0].Product.ID)
	assert.True(t, state.TotalPrice.Equal(cpu.Price))
}

func TestSelectComponent_UnknownProduct(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectComponent(ctx, start.SessionID, uuid.New())
	assert.ErrorIs(t, err, model.ErrProductNotInCatalog)
}

func TestSelectComponent_NonSlotCategory(t *testing.T) {
	laptop := testProduct(product.CategoryLaptop, map[string]interface{}{})
	svc, _ := newTestService(laptop)
	ctx := context.Background()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectComponent(ctx, start.SessionID, laptop.ID)
	assert.ErrorIs(t, err, model.ErrNotABuilderCategory)
}

func TestSelectComponent_ReplacesSameSlot(t *testing.T) {
	gpuA := testProduct(product.CategoryGPU, map[string]interface{}{})
	gpuB := testProduct(product.CategoryGPU, map[string]interface{}{})
	svc, _ := newTestService(gpuA, gpuB)
	ctx := context.Background()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectComponent(ctx, start.SessionID, gpuA.ID)
	require.NoError(t, err)
	state, err := svc.SelectComponent(ctx, start.SessionID, gpuB.ID)
	require.NoError(t, err)

	bound := 0
	for _, slot := range state.Slots {
		if slot.Product != nil {
			bound++
			assert.Equal(t, gpuB.ID, slot.Product.ID)
		}
	}
	assert.Equal(t, 1, bound)
}

func TestRemoveComponent_Idempotent(t *testing.T) {
	cpu := testProduct(product.CategoryCPU, map[string]interface{}{})
	svc, _ := newTestService(cpu)
	ctx := context.Background()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectComponent(ctx, start.SessionID, cpu.ID)
	require.NoError(t, err)

	state, err := svc.RemoveComponent(ctx, start.SessionID, product.CategoryCPU)
	require.NoError(t, err)
	assert.Nil(t, state.Slots[0].Product)

	// Removing an already empty slot succeeds and changes nothing
	state, err = svc.RemoveComponent(ctx, start.SessionID, product.CategoryCPU)
	require.NoError(t, err)
	assert.Nil(t, state.Slots[0].Product)
}

func TestIssuesSurviveSessionRoundTrip(t *testing.T) {
	// Typed spec values are re-derived after a session comes out of the
	// store, so a mismatch detected on select is still reported on read
	cpu := testProduct(product.CategoryCPU, map[string]interface{}{"socket": "AM5"})
	mb := testProduct(product.CategoryMotherboard, map[string]interface{}{"socket": "LGA1700"})
	svc, _ := newTestService(cpu, mb)
	ctx := context.Background()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectComponent(ctx, start.SessionID, cpu.ID)
	require.NoError(t, err)
	state, err := svc.SelectComponent(ctx, start.SessionID, mb.ID)
	require.NoError(t, err)
	require.Len(t, state.Issues, 1)
	assert.True(t, state.HasErrors)

	reread, err := svc.GetSession(ctx, start.SessionID)
	require.NoError(t, err)
	require.Len(t, reread.Issues, 1)
	assert.Equal(t, state.Issues[0].Message, reread.Issues[0].Message)
}

func TestSaveBuild_Unauthenticated(t *testing.T) {
	cpu := testProduct(product.CategoryCPU, map[string]interface{}{})
	svc, buildRepo := newTestService(cpu)
	ctx := context.Background()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectComponent(ctx, start.SessionID, cpu.ID)
	require.NoError(t, err)

	_, err = svc.SaveBuild(ctx, nil, &buildmodel.SaveBuildRequest{
		SessionID: start.SessionID,
		Name:      "My build",
	})
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
	assert.Equal(t, 0, buildRepo.createCalls)
}

func TestSaveBuild_EmptySelection(t *testing.T) {
	svc, buildRepo := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SaveBuild(ctx, &userID, &buildmodel.SaveBuildRequest{
		SessionID: start.SessionID,
		Name:      "Empty",
	})
	assert.ErrorIs(t, err, model.ErrEmptySelection)
	assert.Equal(t, 0, buildRepo.createCalls)
}

func TestSaveBuild_SnapshotsBoundSlotsOnly(t *testing.T) {
	sale := decimal.RequireFromString("249.99")
	cpu := testProduct(product.CategoryCPU, map[string]interface{}{})
	cpu.Price = decimal.RequireFromString("299.99")
	cpu.SalePrice = &sale
	gpu := testProduct(product.CategoryGPU, map[string]interface{}{})
	gpu.Price = decimal.RequireFromString("549.50")

	svc, buildRepo := newTestService(cpu, gpu)
	ctx := context.Background()
	userID := uuid.New()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectComponent(ctx, start.SessionID, cpu.ID)
	require.NoError(t, err)
	_, err = svc.SelectComponent(ctx, start.SessionID, gpu.ID)
	require.NoError(t, err)

	build, err := svc.SaveBuild(ctx, &userID, &buildmodel.SaveBuildRequest{
		SessionID: start.SessionID,
		Name:      "Workstation",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, buildRepo.createCalls)
	assert.Equal(t, userID, build.UserID)
	assert.False(t, build.IsPublic)

	require.Len(t, build.Components, 2)
	assert.True(t, build.Components[product.CategoryCPU].Price.Equal(sale))
	assert.True(t, build.Components[product.CategoryGPU].Price.Equal(gpu.Price))
	_, hasPSU := build.Components[product.CategoryPSU]
	assert.False(t, hasPSU)

	assert.True(t, build.TotalPrice.Equal(decimal.RequireFromString("799.49")))
}

func TestLoadBuild_RoundTrip(t *testing.T) {
	cpu := testProduct(product.CategoryCPU, map[string]interface{}{"socket": "AM5"})
	mb := testProduct(product.CategoryMotherboard, map[string]interface{}{"socket": "AM5"})
	svc, _ := newTestService(cpu, mb)
	ctx := context.Background()
	userID := uuid.New()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectComponent(ctx, start.SessionID, cpu.ID)
	require.NoError(t, err)
	_, err = svc.SelectComponent(ctx, start.SessionID, mb.ID)
	require.NoError(t, err)

	saved, err := svc.SaveBuild(ctx, &userID, &buildmodel.SaveBuildRequest{
		SessionID: start.SessionID,
		Name:      "Round trip",
	})
	require.NoError(t, err)

	result, err := svc.LoadBuild(ctx, &userID, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, result.BuildID)
	assert.Empty(t, result.MissingComponents)
	assert.NotEqual(t, start.SessionID, result.State.SessionID)
	require.NotNil(t, result.State.Slots[0].Product)
	assert.Equal(t, cpu.ID, result.State.Slots[0].Product.ID)
	assert.True(t, result.SavedTotalPrice.Equal(saved.TotalPrice))
}

func TestLoadBuild_MissingProductUnbindsSlot(t *testing.T) {
	cpu := testProduct(product.CategoryCPU, map[string]interface{}{})
	gpu := testProduct(product.CategoryGPU, map[string]interface{}{})
	productRepo := newFakeProductRepo(cpu, gpu)
	buildRepo := newFakeBuildRepo()
	svc := NewBuilderService(productRepo, buildRepo, newMemoryCache())
	ctx := context.Background()
	userID := uuid.New()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectComponent(ctx, start.SessionID, cpu.ID)
	require.NoError(t, err)
	_, err = svc.SelectComponent(ctx, start.SessionID, gpu.ID)
	require.NoError(t, err)

	saved, err := svc.SaveBuild(ctx, &userID, &buildmodel.SaveBuildRequest{
		SessionID: start.SessionID,
		Name:      "Will go stale",
	})
	require.NoError(t, err)

	// The GPU disappears from the catalog between save and load
	delete(productRepo.products, gpu.ID)

	result, err := svc.LoadBuild(ctx, &userID, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, []product.Category{product.CategoryGPU}, result.MissingComponents)
	require.NotNil(t, result.State.Slots[0].Product)
	for _, slot := range result.State.Slots {
		if slot.Category == product.CategoryGPU {
			assert.Nil(t, slot.Product)
		}
	}
}

func TestLoadBuild_PrivateHiddenFromOthers(t *testing.T) {
	cpu := testProduct(product.CategoryCPU, map[string]interface{}{})
	svc, _ := newTestService(cpu)
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectComponent(ctx, start.SessionID, cpu.ID)
	require.NoError(t, err)

	saved, err := svc.SaveBuild(ctx, &owner, &buildmodel.SaveBuildRequest{
		SessionID: start.SessionID,
		Name:      "Private",
	})
	require.NoError(t, err)

	_, err = svc.LoadBuild(ctx, &stranger, saved.ID)
	assert.ErrorIs(t, err, buildmodel.ErrBuildNotFound)

	_, err = svc.LoadBuild(ctx, nil, saved.ID)
	assert.ErrorIs(t, err, buildmodel.ErrBuildNotFound)

	_, err = svc.LoadBuild(ctx, &owner, saved.ID)
	assert.NoError(t, err)
}
