package model

import (
	"time"

	"github.com/google/uuid"

	product "pcstore-backend/internal/domains/product/model"
)

// SlotDef describes one of the fixed builder slots
type SlotDef struct {
	Category product.Category `json:"category"`
	Label    string           `json:"label"`
	Required bool             `json:"required"`
}

// SlotDefs is the fixed, ordered set of builder slots. Exactly eight; the
// builder never adds or removes slots at runtime.
var SlotDefs = []SlotDef{
	{Category: product.CategoryCPU, Label: "Processor (CPU)", Required: true},
	{Category: product.CategoryMotherboard, Label: "Motherboard", Required: true},
	{Category: product.CategoryGPU, Label: "Graphics Card (GPU)", Required: false},
	{Category: product.CategoryRAM, Label: "Memory (RAM)", Required: true},
	{Category: product.CategoryStorage, Label: "Storage", Required: true},
	{Category: product.CategoryPSU, Label: "Power Supply (PSU)", Required: true},
	{Category: product.CategoryCase, Label: "Case", Required: true},
	{Category: product.CategoryCooler, Label: "CPU Cooler", Required: false},
}

// SlotCategories returns the slot category keys in slot order
func SlotCategories() []product.Category {
	cats := make([]product.Category, len(SlotDefs))
	for i, def := range SlotDefs {
		cats[i] = def.Category
	}
	return cats
}

// IsSlotCategory reports whether cat is one of the eight builder slots
func IsSlotCategory(cat product.Category) bool {
	for _, def := range SlotDefs {
		if def.Category == cat {
			return true
		}
	}
	return false
}

// Slot is a single builder position: a category key plus an optional binding.
// An unbound slot has a nil ProductID and a nil Product snapshot; the two are
// always set and cleared together.
type Slot struct {
	Category  product.Category `json:"category"`
	ProductID *uuid.UUID       `json:"product_id"`
	Product   *product.Product `json:"product,omitempty"`
}

func (s *Slot) Bound() bool {
	return s.ProductID != nil
}

// Selection is the in-progress build: the eight slots in fixed order.
type Selection struct {
	Slots []Slot `json:"slots"`
}

// NewSelection creates an empty selection with one unbound slot per category
func NewSelection() *Selection {
	slots := make([]Slot, len(SlotDefs))
	for i, def := range SlotDefs {
		slots[i] = Slot{Category: def.Category}
	}
	return &Selection{Slots: slots}
}

// Slot returns the slot for cat, or nil when cat is not a builder category
func (sel *Selection) Slot(cat product.Category) *Slot {
	for i := range sel.Slots {
		if sel.Slots[i].Category == cat {
			return &sel.Slots[i]
		}
	}
	return nil
}

// Product returns the bound product for cat, nil when unbound or unknown
func (sel *Selection) Product(cat product.Category) *product.Product {
	slot := sel.Slot(cat)
	if slot == nil {
		return nil
	}
	return slot.Product
}

// Select binds p to the slot matching its category, replacing any prior
// binding. Products outside the eight builder categories are rejected.
func (sel *Selection) Select(p *product.Product) error {
	if p == nil {
		return ErrProductNotInCatalog
	}
	slot := sel.Slot(p.Category)
	if slot == nil {
		return ErrNotABuilderCategory
	}

	id := p.ID
	slot.ProductID = &id
	slot.Product = p
	return nil
}

// Remove clears the binding for cat. Idempotent; unknown categories are a no-op.
func (sel *Selection) Remove(cat product.Category) {
	slot := sel.Slot(cat)
	if slot == nil {
		return
	}
	slot.ProductID = nil
	slot.Product = nil
}

// BoundCount returns how many slots currently hold a product
func (sel *Selection) BoundCount() int {
	n := 0
	for i := range sel.Slots {
		if sel.Slots[i].Bound() {
			n++
		}
	}
	return n
}

// Reparse re-derives the typed spec view on every bound product. Needed after
// a selection round-trips through JSON (the session store), since the typed
// view is not serialized.
func (sel *Selection) Reparse() {
	for i := range sel.Slots {
		if sel.Slots[i].Product != nil {
			sel.Slots[i].Product.ParseSpecs()
		}
	}
}

// Severity of a compatibility issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a derived compatibility finding. Issues are data, never errors:
// the engine recomputes the full list from the current selection on every
// change and no issue identity survives a recomputation.
type Issue struct {
	Severity      Severity           `json:"severity"`
	Message       string             `json:"message"`
	AffectedSlots []product.Category `json:"affected_components"`
}

// Session is one client's builder state. Each session is owned by exactly
// one client; sessions are never shared across tabs or users.
type Session struct {
	ID        string     `json:"id"`
	Selection *Selection `json:"selection"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Selection: NewSelection(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
