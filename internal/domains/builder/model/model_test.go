package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	product "pcstore-backend/internal/domains/product/model"
)

func TestSlotDefsFixedOrder(t *testing.T) {
	want := []product.Category{
		product.CategoryCPU,
		product.CategoryMotherboard,
		product.CategoryGPU,
		product.CategoryRAM,
		product.CategoryStorage,
		product.CategoryPSU,
		product.CategoryCase,
		product.CategoryCooler,
	}

	require.Len(t, SlotDefs, len(want))
	assert.Equal(t, want, SlotCategories())

	// GPU and cooler are the only optional slots
	for _, def := range SlotDefs {
		optional := def.Category == product.CategoryGPU || def.Category == product.CategoryCooler
		assert.Equal(t, !optional, def.Required, string(def.Category))
	}
}

func TestIsSlotCategory(t *testing.T) {
	assert.True(t, IsSlotCategory(product.CategoryCPU))
	assert.True(t, IsSlotCategory(product.CategoryCooler))
	assert.False(t, IsSlotCategory(product.CategoryLaptop))
	assert.False(t, IsSlotCategory(product.CategoryMonitor))
}

func TestSelectionSelectAndRemove(t *testing.T) {
	sel := NewSelection()
	assert.Equal(t, 0, sel.BoundCount())

	cpu := &product.Product{
		ID:       uuid.New(),
		Name:     "Ryzen 5 9600X",
		Category: product.CategoryCPU,
		Price:    decimal.NewFromFloat(279.99),
	}
	require.NoError(t, sel.Select(cpu))
	assert.Equal(t, 1, sel.BoundCount())
	assert.Equal(t, cpu, sel.Product(product.CategoryCPU))

	// Selecting another product in the same slot replaces it
	other := &product.Product{ID: uuid.New(), Category: product.CategoryCPU}
	require.NoError(t, sel.Select(other))
	assert.Equal(t, 1, sel.BoundCount())
	assert.Equal(t, other, sel.Product(product.CategoryCPU))

	sel.Remove(product.CategoryCPU)
	assert.Equal(t, 0, sel.BoundCount())
	assert.Nil(t, sel.Product(product.CategoryCPU))

	// Removing an empty slot is a no-op
	sel.Remove(product.CategoryCPU)
	assert.Equal(t, 0, sel.BoundCount())
}

func TestSelectionSelectRejectsNonSlotCategory(t *testing.T) {
	sel := NewSelection()
	laptop := &product.Product{ID: uuid.New(), Category: product.CategoryLaptop}
	assert.ErrorIs(t, sel.Select(laptop), ErrNotABuilderCategory)

	assert.ErrorIs(t, sel.Select(nil), ErrProductNotInCatalog)
}

func TestNewSessionHasEmptySlots(t *testing.T) {
	s := NewSession()
	assert.NotEmpty(t, s.ID)
	require.NotNil(t, s.Selection)
	assert.Len(t, s.Selection.Slots, len(SlotDefs))
	assert.Equal(t, 0, s.Selection.BoundCount())
}
