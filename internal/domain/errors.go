package domain

import "errors"

var (
	// Record errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAttachmentNotFound  = errors.New("attachment not found")

	// Validation errors
	ErrMissingID          = errors.New("record is missing an id")
	ErrUnknownKind        = errors.New("unknown attachment kind")
	ErrNegativeAmount     = errors.New("attachment amount must not be negative")
	ErrMissingDate        = errors.New("transaction date is required")
	ErrInvalidParties     = errors.New("attachment parties do not match its kind")
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidAmountValue = errors.New("amount is not a valid decimal")
)
