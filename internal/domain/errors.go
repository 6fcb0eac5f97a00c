package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrOrderNotFound   = errors.New("payment order not found")
)

var (
	// ErrDuplicateEntry is the compare-and-swap signal from the ledger's
	// unique key: another delivery already applied this event.
	ErrDuplicateEntry = errors.New("ledger entry already exists")
	ErrAlreadyPaid    = errors.New("booking is already paid")
)

var (
	ErrUnauthorized = errors.New("webhook verification failed")
	ErrBadPayload   = errors.New("malformed provider payload")
)

var (
	ErrValidation = errors.New("validation error")
)
