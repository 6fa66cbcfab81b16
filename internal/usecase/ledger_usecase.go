package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
	"github.com/aryasulebhavi/digital-wallet-system/internal/ratelimit"
)

// ErrInconsistentLedger is returned when derived balances disagree with the
// transaction log.
var ErrInconsistentLedger = errors.New("ledger is inconsistent: balances do not match history")

// LedgerUseCase owns the append-only transaction log and the balances
// derived from it. It is the single authoritative ledger instance: every
// mutating operation runs under one ordering lock covering the limiter
// evaluation, the funds check, the durable append and the accumulator
// update. Balances are never stored independently of the history that
// justifies them.
type LedgerUseCase struct {
	log       TransactionLog
	directory ActorDirectory
	limiter   RateLimiter
	idGen     IDGenerator
	now       Clock

	mu       sync.RWMutex
	entries  []*domain.Transaction
	byActor  map[string][]*domain.Transaction
	balances map[string]decimal.Decimal
	lastTS   time.Time
}

// NewLedgerUseCase loads the full transaction log and rebuilds the balance
// accumulator from it before serving any operation.
func NewLedgerUseCase(ctx context.Context, log TransactionLog, directory ActorDirectory, limiter RateLimiter, idGen IDGenerator, clock Clock) (*LedgerUseCase, error) {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}

	lg := &LedgerUseCase{
		log:       log,
		directory: directory,
		limiter:   limiter,
		idGen:     idGen,
		now:       clock,
		byActor:   make(map[string][]*domain.Transaction),
		balances:  make(map[string]decimal.Decimal),
	}

	entries, err := log.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transaction log: %w", err)
	}

	for _, entry := range entries {
		lg.index(entry)
	}

	return lg, nil
}

// Deposit appends a single deposit entry for the actor. Inbound funds are
// not rate limited.
func (lg *LedgerUseCase) Deposit(ctx context.Context, actorID string, amount decimal.Decimal, note string) (*domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	lg.mu.Lock()
	defer lg.mu.Unlock()

	entry := &domain.Transaction{
		ID:        lg.idGen.Generate(),
		ActorID:   actorID,
		Kind:      domain.KindDeposit,
		Amount:    amount,
		Note:      note,
		Timestamp: lg.stamp(),
	}

	if err := lg.commit(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Withdraw appends a single withdrawal entry for the actor after consulting
// the rate limiter and checking funds sufficiency. A rate-limit denial is
// reported before the funds check so the two failures stay distinct.
func (lg *LedgerUseCase) Withdraw(ctx context.Context, actorID string, amount decimal.Decimal, note string) (*domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	lg.mu.Lock()
	defer lg.mu.Unlock()

	now := lg.stamp()

	decision := lg.limiter.Evaluate(actorID, amount, ratelimit.CategoryWithdrawal, lg.byActor[actorID], now)
	if !decision.Allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrRateLimitExceeded, decision.Reason)
	}

	if amount.GreaterThan(lg.balanceLocked(actorID)) {
		return nil, domain.ErrInsufficientFunds
	}

	entry := &domain.Transaction{
		ID:        lg.idGen.Generate(),
		ActorID:   actorID,
		Kind:      domain.KindWithdrawal,
		Amount:    amount,
		Note:      note,
		Timestamp: now,
	}

	if err := lg.commit(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Transfer moves amount from actorID to counterpartyID as an atomic pair of
// entries sharing one transfer ID and one timestamp. Limits are evaluated
// against the sender's history only; inbound movement is unrestricted.
func (lg *LedgerUseCase) Transfer(ctx context.Context, actorID, counterpartyID string, amount decimal.Decimal, note string) (outEntry, inEntry *domain.Transaction, err error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, domain.ErrInvalidAmount
	}

	if counterpartyID == actorID {
		return nil, nil, domain.ErrSelfTransfer
	}

	// Counterparty resolution is external I/O; it happens before the
	// ordering lock is taken.
	if _, err := lg.directory.ResolveActor(ctx, counterpartyID); err != nil {
		if errors.Is(err, domain.ErrActorNotFound) {
			return nil, nil, domain.ErrUnknownCounterparty
		}
		return nil, nil, fmt.Errorf("resolve counterparty: %w", err)
	}

	lg.mu.Lock()
	defer lg.mu.Unlock()

	now := lg.stamp()

	decision := lg.limiter.Evaluate(actorID, amount, ratelimit.CategoryTransfer, lg.byActor[actorID], now)
	if !decision.Allowed {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrRateLimitExceeded, decision.Reason)
	}

	if amount.GreaterThan(lg.balanceLocked(actorID)) {
		return nil, nil, domain.ErrInsufficientFunds
	}

	transferID := lg.idGen.Generate()
	outEntry = &domain.Transaction{
		ID:             lg.idGen.Generate(),
		ActorID:        actorID,
		CounterpartyID: counterpartyID,
		TransferID:     transferID,
		Kind:           domain.KindTransferOut,
		Amount:         amount,
		Note:           note,
		Timestamp:      now,
	}
	inEntry = &domain.Transaction{
		ID:             lg.idGen.Generate(),
		ActorID:        counterpartyID,
		CounterpartyID: actorID,
		TransferID:     transferID,
		Kind:           domain.KindTransferIn,
		Amount:         amount,
		Note:           note,
		Timestamp:      now,
	}

	if err := lg.commit(ctx, outEntry, inEntry); err != nil {
		return nil, nil, err
	}

	return outEntry, inEntry, nil
}

// BalanceOf returns the actor's derived balance. Actors with no history
// have a zero balance.
func (lg *LedgerUseCase) BalanceOf(actorID string) decimal.Decimal {
	lg.mu.RLock()
	defer lg.mu.RUnlock()
	return lg.balanceLocked(actorID)
}

// HistoryOf returns all entries for the actor, most recent first. Entries
// with equal timestamps keep their insertion order.
func (lg *LedgerUseCase) HistoryOf(actorID string) []*domain.Transaction {
	lg.mu.RLock()
	defer lg.mu.RUnlock()

	history := make([]*domain.Transaction, len(lg.byActor[actorID]))
	copy(history, lg.byActor[actorID])

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.After(history[j].Timestamp)
	})

	return history
}

// CheckConsistency verifies that the accumulator equals a full fold over the
// log, that no balance is negative, and that transfer legs pair up exactly.
func (lg *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	lg.mu.RLock()
	defer lg.mu.RUnlock()

	derived := make(map[string]decimal.Decimal)
	pairs := make(map[string][]*domain.Transaction)
	for _, entry := range lg.entries {
		derived[entry.ActorID] = derived[entry.ActorID].Add(entry.Signed())
		if entry.TransferID != "" {
			pairs[entry.TransferID] = append(pairs[entry.TransferID], entry)
		}
	}

	if len(derived) != len(lg.balances) {
		return false, ErrInconsistentLedger
	}
	for actorID, balance := range derived {
		if !balance.Equal(lg.balances[actorID]) {
			return false, ErrInconsistentLedger
		}
		if balance.IsNegative() {
			return false, ErrInconsistentLedger
		}
	}

	for _, legs := range pairs {
		if len(legs) != 2 {
			return false, ErrInconsistentLedger
		}
		if !legs[0].Amount.Equal(legs[1].Amount) || !legs[0].Timestamp.Equal(legs[1].Timestamp) {
			return false, ErrInconsistentLedger
		}
		if legs[0].Signed().Add(legs[1].Signed()).Sign() != 0 {
			return false, ErrInconsistentLedger
		}
	}

	return true, nil
}

// stamp returns the commit timestamp for the entry being built. Timestamps
// are clamped to be non-decreasing in insertion order even if the wall
// clock steps backwards. Callers must hold mu.
func (lg *LedgerUseCase) stamp() time.Time {
	now := lg.now()
	if now.Before(lg.lastTS) {
		now = lg.lastTS
	}
	return now
}

// commit durably appends the entries and only then folds them into the
// in-memory state. A failed append leaves balances and history untouched.
// Callers must hold mu.
func (lg *LedgerUseCase) commit(ctx context.Context, entries ...*domain.Transaction) error {
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	if err := lg.log.Append(ctx, entries...); err != nil {
		return fmt.Errorf("append to transaction log: %w", err)
	}

	for _, entry := range entries {
		lg.index(entry)
	}

	return nil
}

func (lg *LedgerUseCase) index(entry *domain.Transaction) {
	lg.entries = append(lg.entries, entry)
	lg.byActor[entry.ActorID] = append(lg.byActor[entry.ActorID], entry)
	lg.balances[entry.ActorID] = lg.balances[entry.ActorID].Add(entry.Signed())
	if entry.Timestamp.After(lg.lastTS) {
		lg.lastTS = entry.Timestamp
	}
}

func (lg *LedgerUseCase) balanceLocked(actorID string) decimal.Decimal {
	return lg.balances[actorID]
}
