package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aryasulebhavi/digital-wallet-system/internal/adapter/http/dto"
	"github.com/aryasulebhavi/digital-wallet-system/internal/adapter/http/middleware"
	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/metrics"
	"github.com/aryasulebhavi/digital-wallet-system/internal/usecase"
)

// LedgerHandler handles money movement and query endpoints.
type LedgerHandler struct {
	ledger  *usecase.LedgerUseCase
	metrics *metrics.Metrics
}

// NewLedgerHandler creates a new LedgerHandler. The metrics argument may be
// nil, in which case no counters are recorded.
func NewLedgerHandler(ledger *usecase.LedgerUseCase, m *metrics.Metrics) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, metrics: m}
}

// Deposit credits the authenticated actor.
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.ActorID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required", "")
		return
	}

	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	amount, err := req.ParseAmount()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	entry, err := h.ledger.Deposit(r.Context(), actorID, amount, req.Note)
	if err != nil {
		h.countError("deposit", err)
		writeError(w, mapDomainError(err), "failed to deposit", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.DepositsCreated.Inc()
		amt, _ := amount.Float64()
		h.metrics.OperationAmount.WithLabelValues("deposit").Observe(amt)
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(entry))
}

// Withdraw debits the authenticated actor.
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.ActorID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required", "")
		return
	}

	var req dto.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	amount, err := req.ParseAmount()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	entry, err := h.ledger.Withdraw(r.Context(), actorID, amount, req.Note)
	if err != nil {
		h.countError("withdraw", err)
		writeError(w, mapDomainError(err), "failed to withdraw", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.WithdrawalsCreated.Inc()
		amt, _ := amount.Float64()
		h.metrics.OperationAmount.WithLabelValues("withdraw").Observe(amt)
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(entry))
}

// Transfer moves funds from the authenticated actor to a counterparty.
func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.ActorID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required", "")
		return
	}

	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.CounterpartyID == "" {
		writeError(w, http.StatusBadRequest, "missing counterparty ID", "")
		return
	}

	amount, err := req.ParseAmount()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	outEntry, inEntry, err := h.ledger.Transfer(r.Context(), actorID, req.CounterpartyID, amount, req.Note)
	if err != nil {
		h.countError("transfer", err)
		writeError(w, mapDomainError(err), "failed to transfer", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.TransfersCreated.Inc()
		amt, _ := amount.Float64()
		h.metrics.OperationAmount.WithLabelValues("transfer").Observe(amt)
	}

	writeJSON(w, http.StatusCreated, dto.TransferResponse{
		Outgoing: dto.TransactionFromDomain(outEntry),
		Incoming: dto.TransactionFromDomain(inEntry),
	})
}

// Balance returns the authenticated actor's current balance.
func (h *LedgerHandler) Balance(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.ActorID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		ActorID: actorID,
		Balance: h.ledger.BalanceOf(actorID),
	})
}

// History returns the authenticated actor's entries, newest first.
func (h *LedgerHandler) History(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.ActorID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(h.ledger.HistoryOf(actorID)))
}

// Consistency audits the full ledger against the derived balances.
func (h *LedgerHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	ok, err := h.ledger.CheckConsistency(r.Context())

	resp := dto.ConsistencyResponse{Consistent: ok}
	if err != nil {
		resp.Detail = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *LedgerHandler) countError(operation string, err error) {
	if h.metrics == nil {
		return
	}
	h.metrics.OperationErrors.WithLabelValues(operation, errorLabel(err)).Inc()
	if mapDomainError(err) == http.StatusTooManyRequests {
		h.metrics.RateLimitDenials.WithLabelValues(operation).Inc()
	}
}

// errorLabel keeps the metric label set bounded: known domain errors map to
// a stable name, everything else is "internal".
func errorLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrRateLimitExceeded):
		return "rate_limited"
	case errors.Is(err, domain.ErrSelfTransfer):
		return "self_transfer"
	case errors.Is(err, domain.ErrUnknownCounterparty):
		return "unknown_counterparty"
	case errors.Is(err, domain.ErrActorNotFound):
		return "actor_not_found"
	default:
		return "internal"
	}
}
