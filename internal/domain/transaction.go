package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind identifies how an entry affects its actor's balance.
type TransactionKind string

const (
	KindDeposit     TransactionKind = "deposit"
	KindWithdrawal  TransactionKind = "withdrawal"
	KindTransferIn  TransactionKind = "transfer_in"
	KindTransferOut TransactionKind = "transfer_out"
)

// IsValid reports whether the kind is one of the four known kinds.
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindTransferIn, KindTransferOut:
		return true
	}
	return false
}

// Credits reports whether entries of this kind increase the actor's balance.
func (k TransactionKind) Credits() bool {
	return k == KindDeposit || k == KindTransferIn
}

// Transaction is a single immutable ledger entry. Entries are only ever
// appended; they are never updated, deleted or reordered.
type Transaction struct {
	Timestamp      time.Time
	ID             string
	ActorID        string
	CounterpartyID string
	TransferID     string
	Kind           TransactionKind
	Note           string
	Amount         decimal.Decimal
}

// Validate checks the entry shape before it may be stored.
func (t *Transaction) Validate() error {
	if !t.Kind.IsValid() {
		return ErrInvalidKind
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	isTransfer := t.Kind == KindTransferIn || t.Kind == KindTransferOut
	if isTransfer && (t.CounterpartyID == "" || t.TransferID == "") {
		return ErrMissingCounterparty
	}
	if !isTransfer && t.CounterpartyID != "" {
		return ErrUnexpectedCounterparty
	}

	return nil
}

// Signed returns the amount with the sign it contributes to the actor's
// balance: positive for deposits and inbound transfers, negative otherwise.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Kind.Credits() {
		return t.Amount
	}
	return t.Amount.Neg()
}
