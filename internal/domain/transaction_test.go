package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
)

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr error
	}{
		{
			name: "valid deposit",
			tx: domain.Transaction{
				ID:      "tx-1",
				ActorID: "actor-1",
				Kind:    domain.KindDeposit,
				Amount:  decimal.NewFromInt(100),
			},
		},
		{
			name: "valid transfer out",
			tx: domain.Transaction{
				ID:             "tx-2",
				ActorID:        "actor-1",
				Kind:           domain.KindTransferOut,
				CounterpartyID: "actor-2",
				TransferID:     "tr-1",
				Amount:         decimal.NewFromInt(50),
			},
		},
		{
			name: "zero amount rejected",
			tx: domain.Transaction{
				ID:      "tx-3",
				ActorID: "actor-1",
				Kind:    domain.KindDeposit,
				Amount:  decimal.Zero,
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "negative amount rejected",
			tx: domain.Transaction{
				ID:      "tx-4",
				ActorID: "actor-1",
				Kind:    domain.KindWithdrawal,
				Amount:  decimal.NewFromInt(-5),
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "unknown kind rejected",
			tx: domain.Transaction{
				ID:      "tx-5",
				ActorID: "actor-1",
				Kind:    domain.TransactionKind("refund"),
				Amount:  decimal.NewFromInt(10),
			},
			wantErr: domain.ErrInvalidKind,
		},
		{
			name: "transfer without counterparty rejected",
			tx: domain.Transaction{
				ID:      "tx-6",
				ActorID: "actor-1",
				Kind:    domain.KindTransferIn,
				Amount:  decimal.NewFromInt(10),
			},
			wantErr: domain.ErrMissingCounterparty,
		},
		{
			name: "deposit with counterparty rejected",
			tx: domain.Transaction{
				ID:             "tx-7",
				ActorID:        "actor-1",
				Kind:           domain.KindDeposit,
				CounterpartyID: "actor-2",
				Amount:         decimal.NewFromInt(10),
			},
			wantErr: domain.ErrUnexpectedCounterparty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if err != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTransactionSigned(t *testing.T) {
	deposit := domain.Transaction{Kind: domain.KindDeposit, Amount: decimal.NewFromInt(100)}
	if !deposit.Signed().Equal(decimal.NewFromInt(100)) {
		t.Errorf("deposit should contribute +100, got %s", deposit.Signed())
	}

	withdrawal := domain.Transaction{Kind: domain.KindWithdrawal, Amount: decimal.NewFromInt(30)}
	if !withdrawal.Signed().Equal(decimal.NewFromInt(-30)) {
		t.Errorf("withdrawal should contribute -30, got %s", withdrawal.Signed())
	}

	out := domain.Transaction{Kind: domain.KindTransferOut, Amount: decimal.NewFromInt(50)}
	in := domain.Transaction{Kind: domain.KindTransferIn, Amount: decimal.NewFromInt(50)}
	if !out.Signed().Add(in.Signed()).IsZero() {
		t.Error("a transfer pair should net to zero")
	}
}
