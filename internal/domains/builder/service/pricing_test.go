package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcstore-backend/internal/domains/builder/model"
	product "pcstore-backend/internal/domains/product/model"
)

func pricedProduct(cat product.Category, price string, salePrice *string) *product.Product {
	p := &product.Product{
		ID:       uuid.New(),
		Name:     string(cat),
		Category: cat,
		Price:    decimal.RequireFromString(price),
		SpecsRaw: map[string]interface{}{},
	}
	if salePrice != nil {
		sp := decimal.RequireFromString(*salePrice)
		p.SalePrice = &sp
	}
	p.ParseSpecs()
	return p
}

func TestTotalPrice_EmptySelection(t *testing.T) {
	assert.True(t, TotalPrice(model.NewSelection()).IsZero())
}

func TestTotalPrice_NilSelection(t *testing.T) {
	assert.True(t, TotalPrice(nil).IsZero())
}

func TestTotalPrice_SumsBoundSlots(t *testing.T) {
	sel := model.NewSelection()
	require.NoError(t, sel.Select(pricedProduct(product.CategoryCPU, "299.99", nil)))
	require.NoError(t, sel.Select(pricedProduct(product.CategoryGPU, "549.50", nil)))

	assert.True(t, TotalPrice(sel).Equal(decimal.RequireFromString("849.49")))
}

func TestTotalPrice_SalePriceWins(t *testing.T) {
	sale := "249.99"
	sel := model.NewSelection()
	require.NoError(t, sel.Select(pricedProduct(product.CategoryCPU, "299.99", &sale)))

	assert.True(t, TotalPrice(sel).Equal(decimal.RequireFromString("249.99")))
}

func TestTotalPrice_ExactDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3
	sel := model.NewSelection()
	require.NoError(t, sel.Select(pricedProduct(product.CategoryCPU, "0.1", nil)))
	require.NoError(t, sel.Select(pricedProduct(product.CategoryGPU, "0.2", nil)))

	assert.True(t, TotalPrice(sel).Equal(decimal.RequireFromString("0.3")))
}

func TestTotalPrice_MonotonicUnderSelection(t *testing.T) {
	sel := model.NewSelection()
	before := TotalPrice(sel)

	require.NoError(t, sel.Select(pricedProduct(product.CategoryRAM, "89.99", nil)))
	after := TotalPrice(sel)
	assert.True(t, after.GreaterThan(before))

	sel.Remove(product.CategoryRAM)
	assert.True(t, TotalPrice(sel).Equal(before))
}

func TestTotalPrice_ReplacementChangesTotal(t *testing.T) {
	sel := model.NewSelection()
	require.NoError(t, sel.Select(pricedProduct(product.CategoryGPU, "500.00", nil)))
	require.NoError(t, sel.Select(pricedProduct(product.CategoryGPU, "750.00", nil)))

	assert.True(t, TotalPrice(sel).Equal(decimal.RequireFromString("750.00")))
}
