package model

import "errors"

var (
	ErrSessionNotFound     = errors.New("builder session not found")
	ErrProductNotInCatalog = errors.New("product not in catalog")
	ErrNotABuilderCategory = errors.New("product category has no builder slot")
	ErrUnauthenticated     = errors.New("authentication required")
	ErrBuildNotFound       = errors.New("build not found")
	ErrEmptySelection      = errors.New("selection has no components")
	ErrInvalidBuildName    = errors.New("build name must be between 1 and 100 characters")
)
