package services

import "errors"

// Sentinel errors the handler layer maps onto HTTP statuses.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
