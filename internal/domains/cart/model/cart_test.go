package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartItemUnitPrice(t *testing.T) {
	item := CartItem{Price: decimal.NewFromFloat(129.99), Quantity: 1}
	assert.True(t, decimal.NewFromFloat(129.99).Equal(item.UnitPrice()))

	sale := decimal.NewFromFloat(99.99)
	item.SalePrice = &sale
	assert.True(t, sale.Equal(item.UnitPrice()))

	// A sale price at or above the list price is ignored
	bogus := decimal.NewFromFloat(150)
	item.SalePrice = &bogus
	assert.True(t, decimal.NewFromFloat(129.99).Equal(item.UnitPrice()))
}

func TestCartItemLineTotal(t *testing.T) {
	item := CartItem{Price: decimal.NewFromFloat(54.50), Quantity: 3}
	assert.Equal(t, "163.5", item.LineTotal().String())

	item.Quantity = 0
	assert.True(t, item.LineTotal().IsZero())
}

func TestAddItemRequestValidate(t *testing.T) {
	valid := AddItemRequest{ProductID: "1b4e28ba-2fa1-11d2-883f-0016d3cca427", Quantity: 2}
	assert.NoError(t, valid.Validate())

	assert.Error(t, AddItemRequest{ProductID: "not-a-uuid", Quantity: 2}.Validate())
	assert.Error(t, AddItemRequest{ProductID: valid.ProductID, Quantity: 0}.Validate())
	assert.Error(t, AddItemRequest{ProductID: valid.ProductID, Quantity: 100}.Validate())
}

func TestUpdateItemRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateItemRequest{Quantity: 5}.Validate())
	assert.Error(t, UpdateItemRequest{Quantity: 0}.Validate())
	assert.Error(t, UpdateItemRequest{Quantity: -1}.Validate())
}
