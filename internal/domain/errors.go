package domain

import "errors"

// Domain errors
var (
	ErrNotFound               = errors.New("resource not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrCategoryNameTaken      = errors.New("category name already exists")
	ErrCategoryInUse          = errors.New("category has transactions")
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name exceeds maximum length")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrAmountPrecision        = errors.New("amount has more than two decimal places")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrDescriptionTooLong     = errors.New("description exceeds maximum length")
	ErrDuplicateTransaction   = errors.New("similar transaction recorded moments ago")
)

// Validation constants
const (
	MaxCategoryNameLength = 50
	MaxDescriptionLength  = 500
)
