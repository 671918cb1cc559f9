package handlers

import (
	"encoding/json"
	"net/http"

	"vibewealth/internal/models"
)

type createTransactionRequest struct {
	ID        int64                  `json:"id"`
	AccountID int64                  `json:"account_id"`
	Amount    int64                  `json:"amount"`
	Type      models.TransactionType `json:"type"`
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	txn, err := h.transactions.CreateTransaction(r.Context(), userID, models.Transaction{
		ID:        req.ID,
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Type:      req.Type,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, txn)
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	txns, err := h.transactions.ListTransactions(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, txns)
}
