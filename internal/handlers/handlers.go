package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vibewealth/internal/chatbot"
	"vibewealth/internal/middleware"
	"vibewealth/internal/models"
	"vibewealth/internal/money"
	"vibewealth/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusFor maps a service error to an HTTP status and the message shown to
// the client. Unknown errors become a generic 500.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, chatbot.ErrNoPendingReply):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrAccessDenied):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidTransactionType),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrBalanceOutOfRange),
		errors.Is(err, chatbot.ErrEmptyQuery):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrDuplicateTransaction),
		errors.Is(err, services.ErrDuplicateGoal):
		return http.StatusConflict, err.Error()
	case errors.Is(err, chatbot.ErrProviderFailed):
		return http.StatusBadGateway, chatbot.ErrProviderFailed.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.WithError(err).WithFields(logrus.Fields{
			"path":       r.URL.Path,
			"request_id": middleware.RequestIDFromContext(r.Context()),
		}).Error("request failed")
	}
	respondError(w, status, message)
}

// actingUser reads the id stored by middleware.ActingUser or middleware.Auth.
func actingUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
	}
	return userID, ok
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

// accountView adds a formatted balance to the stored account.
type accountView struct {
	models.Account
	BalanceDisplay string `json:"balance_display"`
}

func viewAccount(account models.Account) accountView {
	return accountView{Account: account, BalanceDisplay: money.FormatMinor(account.Balance)}
}
