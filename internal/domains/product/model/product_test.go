package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecsTypedFields(t *testing.T) {
	specs := ParseSpecs(map[string]interface{}{
		"socket":   "AM5",
		"type":     "DDR5",
		"ram_type": "DDR4",
		"tdp":      125,
		"wattage":  750.0,
		"length":   "320.5",
	})

	require.NotNil(t, specs.Socket)
	assert.Equal(t, "AM5", *specs.Socket)
	require.NotNil(t, specs.MemoryType)
	assert.Equal(t, "DDR5", *specs.MemoryType)
	require.NotNil(t, specs.RAMType)
	assert.Equal(t, "DDR4", *specs.RAMType)
	require.NotNil(t, specs.TDP)
	assert.Equal(t, 125.0, *specs.TDP)
	require.NotNil(t, specs.Wattage)
	assert.Equal(t, 750.0, *specs.Wattage)
	require.NotNil(t, specs.Length)
	assert.Equal(t, 320.5, *specs.Length)
}

func TestParseSpecsMissingAndEmptyKeysAreNil(t *testing.T) {
	specs := ParseSpecs(map[string]interface{}{
		"socket":  "",
		"wattage": "",
		"tdp":     nil,
	})

	assert.Nil(t, specs.Socket)
	assert.Nil(t, specs.Wattage)
	assert.Nil(t, specs.TDP)
	assert.Nil(t, specs.RAMType)
	assert.Nil(t, specs.GPUClearance)
}

func TestParseSpecsUnparseableNumberIsNil(t *testing.T) {
	specs := ParseSpecs(map[string]interface{}{
		"wattage": "plenty",
	})
	assert.Nil(t, specs.Wattage)
}

func TestParseSpecsNilMap(t *testing.T) {
	specs := ParseSpecs(nil)
	assert.Nil(t, specs.Socket)
	assert.Nil(t, specs.TDP)
}

func TestParseSpecsNumericStrings(t *testing.T) {
	specs := ParseSpecs(map[string]interface{}{
		"tdp":           "65",
		"gpu_clearance": "330",
	})

	require.NotNil(t, specs.TDP)
	assert.Equal(t, 65.0, *specs.TDP)
	require.NotNil(t, specs.GPUClearance)
	assert.Equal(t, 330.0, *specs.GPUClearance)
}

func TestEffectivePrice(t *testing.T) {
	p := Product{Price: decimal.NewFromFloat(549.99)}
	assert.True(t, decimal.NewFromFloat(549.99).Equal(p.EffectivePrice()))
	assert.False(t, p.OnSale())

	sale := decimal.NewFromFloat(499.99)
	p.SalePrice = &sale
	assert.True(t, sale.Equal(p.EffectivePrice()))
	assert.True(t, p.OnSale())
}

func TestCategoryIsValid(t *testing.T) {
	assert.True(t, CategoryCPU.IsValid())
	assert.True(t, CategoryCooler.IsValid())
	assert.False(t, Category("toaster").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestProductValidate(t *testing.T) {
	valid := func() Product {
		return Product{
			Name:     "Ryzen 7 9700X",
			Category: CategoryCPU,
			Price:    decimal.NewFromFloat(359.99),
			Stock:    10,
		}
	}

	t.Run("valid product passes", func(t *testing.T) {
		p := valid()
		assert.NoError(t, p.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		p := valid()
		p.Name = ""
		assert.ErrorIs(t, p.Validate(), ErrInvalidName)
	})

	t.Run("unknown category", func(t *testing.T) {
		p := valid()
		p.Category = "gadget"
		assert.ErrorIs(t, p.Validate(), ErrInvalidCategory)
	})

	t.Run("zero price", func(t *testing.T) {
		p := valid()
		p.Price = decimal.Zero
		assert.ErrorIs(t, p.Validate(), ErrInvalidPrice)
	})

	t.Run("sale price at or above price", func(t *testing.T) {
		p := valid()
		equal := p.Price
		p.SalePrice = &equal
		assert.ErrorIs(t, p.Validate(), ErrInvalidSalePrice)
	})

	t.Run("negative stock", func(t *testing.T) {
		p := valid()
		p.Stock = -1
		assert.ErrorIs(t, p.Validate(), ErrInvalidStock)
	})
}
