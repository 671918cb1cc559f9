package handlers

import (
	"net/http"

	"vibewealth/internal/auth"
	"vibewealth/internal/middleware"
	"vibewealth/internal/websocket"
)

// WSBalances upgrades to a websocket that streams the caller's balance
// updates. Browsers cannot set headers on the handshake, so the token may
// also be passed as ?token=.
func (h *Handler) WSBalances(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		headerToken, _, err := middleware.BearerToken(r)
		if err != nil {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		token = headerToken
	}
	if token == "" {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	claims, err := auth.ParseToken(h.cfg.JWTSecret, token)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	websocket.ServeWS(w, r, h.upgrader, h.hub, claims.UserID)
}
