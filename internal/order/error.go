package order

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidCustomer   = errors.New("invalid customer details")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotFound     = errors.New("order not found")
)
