package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
)

// TransactionLogRepository implements usecase.TransactionLog on PostgreSQL.
// Every Append call runs inside one database transaction so a transfer's two
// legs are durably recorded together or not at all.
type TransactionLogRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionLogRepository creates a new TransactionLogRepository.
func NewTransactionLogRepository(pool *pgxpool.Pool) *TransactionLogRepository {
	return &TransactionLogRepository{pool: pool}
}

// Append stores all entries in a single transaction.
func (r *TransactionLogRepository) Append(ctx context.Context, entries ...*domain.Transaction) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO transactions (id, actor_id, counterparty_id, transfer_id, kind, amount, note, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8)
	`

	for _, entry := range entries {
		_, err := tx.Exec(ctx, query,
			entry.ID,
			entry.ActorID,
			entry.CounterpartyID,
			entry.TransferID,
			string(entry.Kind),
			entry.Amount,
			entry.Note,
			entry.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("insert entry %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit append: %w", err)
	}

	return nil
}

// Load returns every entry in insertion order.
func (r *TransactionLogRepository) Load(ctx context.Context) ([]*domain.Transaction, error) {
	query := `
		SELECT id, actor_id, COALESCE(counterparty_id, ''), COALESCE(transfer_id, ''), kind, amount, note, created_at
		FROM transactions
		ORDER BY seq
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	defer rows.Close()

	var entries []*domain.Transaction
	for rows.Next() {
		var entry domain.Transaction
		var kind string
		err := rows.Scan(
			&entry.ID,
			&entry.ActorID,
			&entry.CounterpartyID,
			&entry.TransferID,
			&kind,
			&entry.Amount,
			&entry.Note,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		entry.Kind = domain.TransactionKind(kind)
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
