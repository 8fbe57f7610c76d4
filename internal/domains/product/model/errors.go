package model

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrSlugAlreadyExists  = errors.New("slug already exists")
	ErrInvalidName        = errors.New("name must be 1-200 characters")
	ErrDescriptionTooLong = errors.New("description must be at most 2000 characters")
	ErrInvalidCategory    = errors.New("invalid product category")
	ErrInvalidPrice       = errors.New("price must be positive and at most 999999")
	ErrInvalidSalePrice   = errors.New("sale price must be positive and strictly below price")
	ErrInvalidStock       = errors.New("stock must be between 0 and 999999")
)
