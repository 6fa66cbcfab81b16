package domain

import "errors"

var (
	// Ledger errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrRateLimitExceeded   = errors.New("rate limit exceeded")
	ErrSelfTransfer        = errors.New("cannot transfer to same actor")
	ErrUnknownCounterparty = errors.New("counterparty is not a known actor")

	// Entry shape errors
	ErrInvalidKind            = errors.New("unknown transaction kind")
	ErrMissingCounterparty    = errors.New("transfer entry requires counterparty and transfer id")
	ErrUnexpectedCounterparty = errors.New("non-transfer entry must not carry a counterparty")

	// Identity errors
	ErrActorNotFound = errors.New("actor not found")
	ErrActorExists   = errors.New("actor with this email already exists")
)
