package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"vibewealth/internal/auth"
)

type contextKey string

const userIDKey contextKey = "user_id"

var errMalformedHeader = errors.New("invalid authorization header")

func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// BearerToken extracts the token from an Authorization header. It reports
// false when there is no header at all.
func BearerToken(r *http.Request) (string, bool, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false, nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", true, errMalformedHeader
	}
	return parts[1], true, nil
}

// Auth requires a valid bearer token and stores its user id in the context.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, present, err := BearerToken(r)
			if !present {
				writeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}
			if err != nil {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}
			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

// ActingUser resolves the user a request acts for from the user_id query
// parameter and an optional bearer token. A token, when sent, must be valid
// and agree with user_id; it stands in for user_id when the parameter is
// absent. With requireToken set, requests without a token are rejected.
func ActingUser(secret string, requireToken bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var queryID int64
			if raw := r.URL.Query().Get("user_id"); raw != "" {
				parsed, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || parsed <= 0 {
					writeError(w, http.StatusBadRequest, "user_id must be a positive integer")
					return
				}
				queryID = parsed
			}

			token, present, err := BearerToken(r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}
			if !present {
				if requireToken {
					writeError(w, http.StatusUnauthorized, "missing authorization header")
					return
				}
				if queryID == 0 {
					writeError(w, http.StatusBadRequest, "user_id is required")
					return
				}
				next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), queryID)))
				return
			}

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			if queryID != 0 && queryID != claims.UserID {
				writeError(w, http.StatusForbidden, "token does not match user_id")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
