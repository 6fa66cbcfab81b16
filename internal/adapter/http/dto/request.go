package dto

import (
	"github.com/shopspring/decimal"
)

// DepositRequest represents a request to credit the authenticated actor.
type DepositRequest struct {
	Amount string `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// ParseAmount parses the amount string into a decimal.
func (r *DepositRequest) ParseAmount() (decimal.Decimal, error) {
	return decimal.NewFromString(r.Amount)
}

// WithdrawRequest represents a request to debit the authenticated actor.
type WithdrawRequest struct {
	Amount string `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// ParseAmount parses the amount string into a decimal.
func (r *WithdrawRequest) ParseAmount() (decimal.Decimal, error) {
	return decimal.NewFromString(r.Amount)
}

// TransferRequest represents a request to move funds to another actor.
type TransferRequest struct {
	CounterpartyID string `json:"counterparty_id"`
	Amount         string `json:"amount"`
	Note           string `json:"note,omitempty"`
}

// ParseAmount parses the amount string into a decimal.
func (r *TransferRequest) ParseAmount() (decimal.Decimal, error) {
	return decimal.NewFromString(r.Amount)
}

// RegisterActorRequest represents a request to register a new actor.
type RegisterActorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a credential check request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
