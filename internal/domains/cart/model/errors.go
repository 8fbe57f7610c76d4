package model

import "errors"

var (
	ErrItemNotFound      = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCartEmpty         = errors.New("cart is empty")
)
