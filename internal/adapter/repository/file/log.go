// Package file provides a JSON-snapshot transaction log for single-binary
// deployments without a database. Writes go to a temp file which then
// replaces the real file via rename, so a crash mid-write never corrupts or
// partially applies an append.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
)

// snapshot is the on-disk shape.
type snapshot struct {
	SavedAt time.Time `json:"saved_at"`
	Entries []record  `json:"entries"`
}

type record struct {
	ID             string          `json:"id"`
	ActorID        string          `json:"actor_id"`
	CounterpartyID string          `json:"counterparty_id,omitempty"`
	TransferID     string          `json:"transfer_id,omitempty"`
	Kind           string          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	Note           string          `json:"note,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// TransactionLog implements usecase.TransactionLog on a JSON file.
type TransactionLog struct {
	path string

	mu      sync.Mutex
	loaded  bool
	entries []*domain.Transaction
}

// NewTransactionLog creates a log backed by the file at path. The file is
// created on first append.
func NewTransactionLog(path string) *TransactionLog {
	return &TransactionLog{path: path}
}

// Append stores all entries or none: the new snapshot only replaces the old
// file after it has been fully written.
func (l *TransactionLog) Append(_ context.Context, entries ...*domain.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(); err != nil {
		return err
	}

	next := make([]*domain.Transaction, 0, len(l.entries)+len(entries))
	next = append(next, l.entries...)
	next = append(next, entries...)

	if err := l.save(next); err != nil {
		return err
	}

	l.entries = next
	return nil
}

// Load returns every entry in insertion order.
func (l *TransactionLog) Load(context.Context) ([]*domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(); err != nil {
		return nil, err
	}

	out := make([]*domain.Transaction, len(l.entries))
	copy(out, l.entries)
	return out, nil
}

func (l *TransactionLog) ensureLoaded() error {
	if l.loaded {
		return nil
	}

	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		l.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("open transaction log: %w", err)
	}
	defer f.Close()

	var snap snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return fmt.Errorf("decode transaction log: %w", err)
	}

	l.entries = make([]*domain.Transaction, 0, len(snap.Entries))
	for _, rec := range snap.Entries {
		l.entries = append(l.entries, &domain.Transaction{
			ID:             rec.ID,
			ActorID:        rec.ActorID,
			CounterpartyID: rec.CounterpartyID,
			TransferID:     rec.TransferID,
			Kind:           domain.TransactionKind(rec.Kind),
			Amount:         rec.Amount,
			Note:           rec.Note,
			Timestamp:      rec.Timestamp,
		})
	}

	l.loaded = true
	return nil
}

func (l *TransactionLog) save(entries []*domain.Transaction) error {
	snap := snapshot{
		SavedAt: time.Now().UTC(),
		Entries: make([]record, 0, len(entries)),
	}
	for _, entry := range entries {
		snap.Entries = append(snap.Entries, record{
			ID:             entry.ID,
			ActorID:        entry.ActorID,
			CounterpartyID: entry.CounterpartyID,
			TransferID:     entry.TransferID,
			Kind:           string(entry.Kind),
			Amount:         entry.Amount,
			Note:           entry.Note,
			Timestamp:      entry.Timestamp,
		})
	}

	tmp := l.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp log: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode transaction log: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp log: %w", err)
	}

	if err := os.Rename(tmp, l.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace transaction log: %w", err)
	}

	return nil
}
