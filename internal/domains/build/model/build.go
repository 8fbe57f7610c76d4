package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	product "pcstore-backend/internal/domains/product/model"
)

// BuildComponent is the catalog snapshot stored inside a saved build: enough
// to render the build list without joining the products table, while the id
// still points back at the live catalog row for reloading.
type BuildComponent struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ComponentMap keys component snapshots by slot category. Only slots that
// were actually bound at save time appear; absent keys mean the slot was
// empty, never that it failed.
type ComponentMap map[product.Category]BuildComponent

// Build is a saved PC configuration
type Build struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description" db:"description"`
	Components  ComponentMap    `json:"components" db:"components"`
	TotalPrice  decimal.Decimal `json:"total_price" db:"total_price"`
	IsPublic    bool            `json:"is_public" db:"is_public"`
	LikesCount  int             `json:"likes_count" db:"likes_count"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// Comment on a public build
type Comment struct {
	ID         uuid.UUID `json:"id" db:"id"`
	BuildID    uuid.UUID `json:"build_id" db:"build_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	AuthorName string    `json:"author_name" db:"author_name"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
