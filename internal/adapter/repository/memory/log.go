// Package memory provides mutex-guarded in-memory repositories, used for
// tests and for running the wallet without external storage.
package memory

import (
	"context"
	"sync"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
)

// TransactionLog implements usecase.TransactionLog in memory.
type TransactionLog struct {
	mu      sync.Mutex
	entries []*domain.Transaction
}

// NewTransactionLog creates an empty in-memory log.
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Append stores all entries or, on the slice append path, none; the in-memory
// append cannot fail partway.
func (l *TransactionLog) Append(_ context.Context, entries ...*domain.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entries...)
	return nil
}

// Load returns every entry in insertion order.
func (l *TransactionLog) Load(context.Context) ([]*domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*domain.Transaction, len(l.entries))
	copy(out, l.entries)
	return out, nil
}
