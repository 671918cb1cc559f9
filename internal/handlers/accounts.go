package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type createAccountRequest struct {
	Name string `json:"name"`
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	account, err := h.accounts.CreateAccount(r.Context(), userID, req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, viewAccount(account))
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	accounts, err := h.accounts.ListAccounts(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]accountView, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, viewAccount(account))
	}
	respondJSON(w, http.StatusOK, out)
}

// UpdateAccount sets the balance given by the bal query parameter.
func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	accountID, ok := pathID(w, r)
	if !ok {
		return
	}
	balance, err := strconv.ParseInt(r.URL.Query().Get("bal"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bal must be an integer")
		return
	}
	account, err := h.accounts.UpdateAccount(r.Context(), accountID, userID, balance)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, viewAccount(account))
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	accountID, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.accounts.DeleteAccount(r.Context(), accountID, userID); err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}

func (h *Handler) SelfCheck(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	rows, err := h.accounts.SelfCheck(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}
