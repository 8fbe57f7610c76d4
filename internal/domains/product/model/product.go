package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Category represents the closed set of product categories
type Category string

const (
	CategoryLaptop      Category = "laptop"
	CategoryCPU         Category = "cpu"
	CategoryGPU         Category = "gpu"
	CategoryMotherboard Category = "motherboard"
	CategoryRAM         Category = "ram"
	CategoryStorage     Category = "storage"
	CategoryPSU         Category = "psu"
	CategoryCase        Category = "case"
	CategoryCooler      Category = "cooler"
	CategoryMonitor     Category = "monitor"
	CategoryKeyboard    Category = "keyboard"
	CategoryMouse       Category = "mouse"
	CategoryHeadset     Category = "headset"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryLaptop, CategoryCPU, CategoryGPU, CategoryMotherboard,
		CategoryRAM, CategoryStorage, CategoryPSU, CategoryCase, CategoryCooler,
		CategoryMonitor, CategoryKeyboard, CategoryMouse, CategoryHeadset:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Specs is the typed view of a product's spec bag. The raw specs column is an
// open key->value map with loosely typed values ("320", 320, 320.0 all occur);
// it gets parsed once at the catalog boundary so the compatibility rules only
// ever see typed optional numerics. A nil field means "unknown", never zero.
type Specs struct {
	Socket          *string  `json:"socket,omitempty"`
	MemoryType      *string  `json:"memory_type,omitempty"` // "type" key on RAM modules
	RAMType         *string  `json:"ram_type,omitempty"`    // supported type on motherboards
	TDP             *float64 `json:"tdp,omitempty"`
	Wattage         *float64 `json:"wattage,omitempty"`
	Length          *float64 `json:"length,omitempty"` // mm, GPUs
	Height          *float64 `json:"height,omitempty"` // mm, coolers
	GPUClearance    *float64 `json:"gpu_clearance,omitempty"`
	CPUCoolerHeight *float64 `json:"cpu_cooler_height,omitempty"`
}

// ParseSpecs extracts the typed fields from a raw spec map. Missing keys,
// empty strings and unparseable numbers all come back nil.
func ParseSpecs(raw map[string]interface{}) Specs {
	return Specs{
		Socket:          specString(raw, "socket"),
		MemoryType:      specString(raw, "type"),
		RAMType:         specString(raw, "ram_type"),
		TDP:             specNumber(raw, "tdp"),
		Wattage:         specNumber(raw, "wattage"),
		Length:          specNumber(raw, "length"),
		Height:          specNumber(raw, "height"),
		GPUClearance:    specNumber(raw, "gpu_clearance"),
		CPUCoolerHeight: specNumber(raw, "cpu_cooler_height"),
	}
}

func specString(raw map[string]interface{}, key string) *string {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	s, err := cast.ToStringE(v)
	if err != nil || s == "" {
		return nil
	}
	return &s
}

func specNumber(raw map[string]interface{}, key string) *float64 {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	if s, isStr := v.(string); isStr && s == "" {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil
	}
	return &f
}

// Product represents a purchasable hardware component
type Product struct {
	ID          uuid.UUID              `json:"id" db:"id"`
	Name        string                 `json:"name" db:"name"`
	Slug        string                 `json:"slug" db:"slug"`
	Description *string                `json:"description" db:"description"`
	Category    Category               `json:"category" db:"category"`
	Price       decimal.Decimal        `json:"price" db:"price"`
	SalePrice   *decimal.Decimal       `json:"sale_price" db:"sale_price"`
	Stock       int                    `json:"stock" db:"stock"`
	SpecsRaw    map[string]interface{} `json:"specs" db:"specs"`
	ImageURL    *string                `json:"image_url" db:"image_url"`
	Featured    bool                   `json:"featured" db:"featured"`
	CreatedAt   time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at" db:"updated_at"`

	// Parsed at ingestion, not serialized back out
	Specs Specs `json:"-" db:"-"`
}

// ParseSpecs populates the typed spec view from the raw map.
// Repositories call it after scanning the specs column.
func (p *Product) ParseSpecs() {
	p.Specs = ParseSpecs(p.SpecsRaw)
}

// EffectivePrice returns the price a shopper actually pays: sale price wins
// when present.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// OnSale reports whether the product has an active sale price
func (p *Product) OnSale() bool {
	return p.SalePrice != nil
}

// Validate enforces catalog constraints
func (p *Product) Validate() error {
	if len(p.Name) == 0 || len(p.Name) > 200 {
		return ErrInvalidName
	}
	if p.Description != nil && len(*p.Description) > 2000 {
		return ErrDescriptionTooLong
	}
	if !p.Category.IsValid() {
		return ErrInvalidCategory
	}
	if !p.Price.IsPositive() || p.Price.GreaterThan(maxPrice) {
		return ErrInvalidPrice
	}
	if p.SalePrice != nil {
		if !p.SalePrice.IsPositive() || p.SalePrice.GreaterThanOrEqual(p.Price) {
			return ErrInvalidSalePrice
		}
	}
	if p.Stock < 0 || p.Stock > 999999 {
		return ErrInvalidStock
	}
	return nil
}

var maxPrice = decimal.NewFromInt(999999)
