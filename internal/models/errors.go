package models

import "errors"

// Common errors used throughout the application
var (
	ErrDrinkNotFound    = errors.New("drink not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrSubmissionFailed = errors.New("order submission failed")
)
