package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
)

// TransactionResponse represents a single ledger entry.
type TransactionResponse struct {
	ID             string          `json:"id"`
	ActorID        string          `json:"actor_id"`
	CounterpartyID string          `json:"counterparty_id,omitempty"`
	TransferID     string          `json:"transfer_id,omitempty"`
	Kind           string          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	Note           string          `json:"note,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// TransactionFromDomain converts a domain transaction to its response form.
func TransactionFromDomain(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             t.ID,
		ActorID:        t.ActorID,
		CounterpartyID: t.CounterpartyID,
		TransferID:     t.TransferID,
		Kind:           string(t.Kind),
		Amount:         t.Amount,
		Note:           t.Note,
		Timestamp:      t.Timestamp,
	}
}

// TransactionsFromDomain converts a slice of domain transactions.
func TransactionsFromDomain(ts []*domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		out[i] = TransactionFromDomain(t)
	}
	return out
}

// TransferResponse carries both legs of a completed transfer.
type TransferResponse struct {
	Outgoing TransactionResponse `json:"outgoing"`
	Incoming TransactionResponse `json:"incoming"`
}

// BalanceResponse represents an actor's current balance.
type BalanceResponse struct {
	ActorID string          `json:"actor_id"`
	Balance decimal.Decimal `json:"balance"`
}

// ConsistencyResponse reports the outcome of a full ledger audit.
type ConsistencyResponse struct {
	Consistent bool   `json:"consistent"`
	Detail     string `json:"detail,omitempty"`
}

// ActorResponse represents an actor profile. The password hash never
// leaves the server.
type ActorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ActorFromDomain converts a domain actor profile to its response form.
func ActorFromDomain(a *domain.ActorProfile) ActorResponse {
	return ActorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

// ActorsFromDomain converts a slice of domain actor profiles.
func ActorsFromDomain(as []*domain.ActorProfile) []ActorResponse {
	out := make([]ActorResponse, len(as))
	for i, a := range as {
		out[i] = ActorFromDomain(a)
	}
	return out
}

// TokenResponse carries a freshly issued access token.
type TokenResponse struct {
	Token string        `json:"token"`
	Actor ActorResponse `json:"actor"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
