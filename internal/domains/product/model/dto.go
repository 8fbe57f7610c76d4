package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ProductRequest is the admin create/update payload
type ProductRequest struct {
	Name        string                 `json:"name"`
	Slug        string                 `json:"slug,omitempty"` // generated from name when empty
	Description *string                `json:"description"`
	Category    string                 `json:"category"`
	Price       float64                `json:"price"`
	SalePrice   *float64               `json:"sale_price"`
	Stock       int                    `json:"stock"`
	Specs       map[string]interface{} `json:"specs"`
	ImageURL    *string                `json:"image_url"`
	Featured    bool                   `json:"featured"`
}

func (r ProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.By(func(value interface{}) error {
				if !Category(value.(string)).IsValid() {
					return ErrInvalidCategory
				}
				return nil
			}),
		),
		validation.Field(&r.Price,
			validation.Required.Error("price is required"),
			validation.Min(0.01),
			validation.Max(999999.0),
		),
		validation.Field(&r.Stock,
			validation.Min(0),
			validation.Max(999999),
		),
	)
}

// ProductFilter holds catalog listing filters
type ProductFilter struct {
	Categories []Category `form:"category"`
	Search     string     `form:"search"`
	Featured   *bool      `form:"featured"`
	OnSale     *bool      `form:"on_sale"`
	PriceMin   float64    `form:"price_min"`
	PriceMax   float64    `form:"price_max"`
	Page       int        `form:"page"`
	Limit      int        `form:"limit"`
	Sort       string     `form:"sort"` // price_asc, price_desc, newest, name
}

// Normalize clamps pagination and defaults the sort order
func (f *ProductFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	switch f.Sort {
	case "price_asc", "price_desc", "newest", "name":
	default:
		f.Sort = "newest"
	}
}

func (f *ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ProductListItem is the trimmed shape for list views
type ProductListItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Category  Category  `json:"category"`
	Price     string    `json:"price"`
	SalePrice *string   `json:"sale_price,omitempty"`
	Stock     int       `json:"stock"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Featured  bool      `json:"featured"`
}

func (p *Product) ToListItem() ProductListItem {
	item := ProductListItem{
		ID:       p.ID,
		Name:     p.Name,
		Slug:     p.Slug,
		Category: p.Category,
		Price:    p.Price.StringFixed(2),
		Stock:    p.Stock,
		ImageURL: p.ImageURL,
		Featured: p.Featured,
	}
	if p.SalePrice != nil {
		s := p.SalePrice.StringFixed(2)
		item.SalePrice = &s
	}
	return item
}
