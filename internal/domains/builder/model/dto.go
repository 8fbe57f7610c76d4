package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	product "pcstore-backend/internal/domains/product/model"
)

// SelectRequest binds a catalog product into the session
type SelectRequest struct {
	ProductID string `json:"product_id"`
}

func (r SelectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required, is.UUID),
	)
}

// SlotState is one slot as presented to the client: the fixed slot metadata
// plus whatever is currently bound.
type SlotState struct {
	Category product.Category `json:"category"`
	Label    string           `json:"label"`
	Required bool             `json:"required"`
	Product  *product.Product `json:"product"`
}

// BuilderState is the full derived view of a session: the slots in fixed
// order, the recomputed issue list and the running total. Recomputed from
// scratch on every read and every mutation.
type BuilderState struct {
	SessionID  string          `json:"session_id"`
	Slots      []SlotState     `json:"slots"`
	Issues     []Issue         `json:"issues"`
	TotalPrice decimal.Decimal `json:"total_price"`
	HasErrors  bool            `json:"has_errors"`
}

// LoadResult is the outcome of restoring a saved build into a session.
// MissingComponents lists the categories whose saved product no longer
// exists in the catalog; those slots come back unbound.
type LoadResult struct {
	State             *BuilderState      `json:"state"`
	BuildID           uuid.UUID          `json:"build_id"`
	Name              string             `json:"name"`
	SavedTotalPrice   decimal.Decimal    `json:"saved_total_price"`
	MissingComponents []product.Category `json:"missing_components"`
}
