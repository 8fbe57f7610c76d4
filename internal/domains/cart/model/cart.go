package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CartItem is one product line in a user's cart. Product fields are joined
// in from the live catalog on every read so prices never go stale.
type CartItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	ProductName  string           `json:"product_name" db:"product_name"`
	ProductSlug  string           `json:"product_slug" db:"product_slug"`
	ImageURL     *string          `json:"image_url" db:"image_url"`
	Price        decimal.Decimal  `json:"price" db:"price"`
	SalePrice    *decimal.Decimal `json:"sale_price" db:"sale_price"`
	Stock        int              `json:"stock" db:"stock"`
}

// UnitPrice is the price one unit currently sells for
func (i *CartItem) UnitPrice() decimal.Decimal {
	if i.SalePrice != nil && i.SalePrice.LessThan(i.Price) {
		return *i.SalePrice
	}
	return i.Price
}

// LineTotal is unit price times quantity
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the full cart view: items plus the computed subtotal
type Cart struct {
	Items    []CartItem      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Count    int             `json:"count"`
}

// AddItemRequest puts a product in the cart
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required, is.UUID),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1), validation.Max(99)),
	)
}

// UpdateItemRequest changes a cart line's quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.Required, validation.Min(1), validation.Max(99)),
	)
}
