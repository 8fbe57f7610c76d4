package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Status of an order. Payment is simulated, so checkout lands directly on
// StatusPaid; the remaining states are fulfillment driven.
type Status string

const (
	StatusPending    Status = "pending"
	StatusPaid       Status = "paid"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces the forward-only fulfillment flow. Cancellation
// is allowed until the order ships; delivered and cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusPaid || next == StatusCancelled
	case StatusPaid:
		return next == StatusProcessing || next == StatusCancelled
	case StatusProcessing:
		return next == StatusShipped || next == StatusCancelled
	case StatusShipped:
		return next == StatusDelivered
	}
	return false
}

// OrderItem is a snapshot of one purchased line. Name and unit price are
// frozen at checkout; later catalog edits never change an order.
type OrderItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// ShippingAddress is stored as a JSONB document on the order
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

func (a ShippingAddress) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.FullName, validation.Required, validation.Length(1, 100)),
		validation.Field(&a.Phone, validation.Required, validation.Length(6, 20)),
		validation.Field(&a.Line1, validation.Required, validation.Length(1, 200)),
		validation.Field(&a.Line2, validation.Length(0, 200)),
		validation.Field(&a.City, validation.Required, validation.Length(1, 100)),
		validation.Field(&a.Country, validation.Required, validation.Length(2, 100)),
	)
}

// Order is a completed checkout
type Order struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	UserID          uuid.UUID       `json:"user_id" db:"user_id"`
	Status          Status          `json:"status" db:"status"`
	Items           []OrderItem     `json:"items" db:"items"`
	Total           decimal.Decimal `json:"total" db:"total"`
	ShippingAddress ShippingAddress `json:"shipping_address" db:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// CheckoutRequest turns the current cart into an order
type CheckoutRequest struct {
	ShippingAddress ShippingAddress `json:"shipping_address"`
}

func (r CheckoutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ShippingAddress, validation.Required),
	)
}

// UpdateStatusRequest moves an order through fulfillment (admin only)
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required),
	)
}

// OrderFilter pages the admin order list
type OrderFilter struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (f *OrderFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

func (f *OrderFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
