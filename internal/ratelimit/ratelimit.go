// Package ratelimit gates balance-decreasing ledger operations against
// configured fraud-prevention thresholds. The limiter is purely advisory:
// it never mutates state and never appends to the log.
package ratelimit

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
)

// Category classifies the operation being evaluated.
type Category string

const (
	CategoryWithdrawal Category = "withdrawal"
	CategoryTransfer   Category = "transfer"
)

// Reason identifies which rule denied a request.
type Reason string

const (
	ReasonPerTransactionCap  Reason = "per_transaction_cap"
	ReasonWindowCap          Reason = "transactions_per_window"
	ReasonDailyWithdrawalCap Reason = "daily_withdrawal_cap"
	ReasonDailyTransferCap   Reason = "daily_transfer_cap"
)

// Decision is the outcome of an evaluation.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Allow is the positive decision.
var Allow = Decision{Allowed: true}

// Deny returns a negative decision with the given reason.
func Deny(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Limits holds the configured thresholds. All fields are supplied at
// construction; see DefaultLimits for the stock values.
type Limits struct {
	// MaxPerTransaction caps the amount of any single evaluated operation.
	MaxPerTransaction decimal.Decimal
	// MaxTxPerWindow caps how many entries an actor may accrue within Window.
	MaxTxPerWindow int
	// Window is the trailing interval for the transaction-count rule.
	Window time.Duration
	// DailyWithdrawalCap caps cumulative withdrawals per calendar day.
	DailyWithdrawalCap decimal.Decimal
	// DailyTransferCap caps cumulative outbound transfers per calendar day.
	DailyTransferCap decimal.Decimal
}

// DefaultLimits returns the stock thresholds.
func DefaultLimits() Limits {
	return Limits{
		MaxPerTransaction:  decimal.NewFromInt(10000),
		MaxTxPerWindow:     5,
		Window:             60 * time.Second,
		DailyWithdrawalCap: decimal.NewFromInt(5000),
		DailyTransferCap:   decimal.NewFromInt(5000),
	}
}

// Limiter evaluates requests against a history snapshot. It holds no
// mutable state and is safe for concurrent use.
type Limiter struct {
	limits Limits
}

// New creates a Limiter with the given thresholds.
func New(limits Limits) *Limiter {
	return &Limiter{limits: limits}
}

// Evaluate decides whether an operation of the given category and amount may
// proceed for the actor, judged against the supplied history at the supplied
// instant. Rules run in a fixed order so the reported reason is
// deterministic for a given snapshot: per-transaction cap, then the trailing
// window count, then the category's calendar-day cap.
func (l *Limiter) Evaluate(actorID string, amount decimal.Decimal, category Category, history []*domain.Transaction, now time.Time) Decision {
	if amount.GreaterThan(l.limits.MaxPerTransaction) {
		return Deny(ReasonPerTransactionCap)
	}

	windowStart := now.Add(-l.limits.Window)
	recent := 0
	for _, tx := range history {
		if tx.ActorID == actorID && tx.Timestamp.After(windowStart) {
			recent++
		}
	}
	if recent >= l.limits.MaxTxPerWindow {
		return Deny(ReasonWindowCap)
	}

	switch category {
	case CategoryWithdrawal:
		spent := sumSince(history, actorID, domain.KindWithdrawal, startOfDay(now))
		if spent.Add(amount).GreaterThan(l.limits.DailyWithdrawalCap) {
			return Deny(ReasonDailyWithdrawalCap)
		}
	case CategoryTransfer:
		sent := sumSince(history, actorID, domain.KindTransferOut, startOfDay(now))
		if sent.Add(amount).GreaterThan(l.limits.DailyTransferCap) {
			return Deny(ReasonDailyTransferCap)
		}
	}

	return Allow
}

// startOfDay is midnight of now's calendar day in now's location.
func startOfDay(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
}

func sumSince(history []*domain.Transaction, actorID string, kind domain.TransactionKind, since time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range history {
		if tx.ActorID != actorID || tx.Kind != kind {
			continue
		}
		if tx.Timestamp.Before(since) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}
