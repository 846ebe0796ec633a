package middleware

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"voidslab-service/auth"
	"voidslab-service/models"

	"github.com/jmoiron/sqlx"
	"github.com/umakantv/go-utils/errs"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// RequireUser gates protected routes. It extracts the bearer token, validates
// it, resolves the user from the store and attaches it to the request context.
// Every failure is the same generic 401 so callers cannot distinguish a
// missing token from a valid token for a deleted account. The store lookup
// runs on every request; resolved identities are never cached.
func RequireUser(db *sqlx.DB, jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthenticated(w)
				return
			}

			userID, err := auth.GetUserIDFromToken(token, jwtSecret)
			if err != nil {
				unauthenticated(w)
				return
			}

			var user models.User
			err = db.Get(&user, "SELECT * FROM users WHERE id = ?", userID)
			if err == sql.ErrNoRows {
				unauthenticated(w)
				return
			}
			if err != nil {
				logger.Error("Failed to resolve user for request", zap.Error(err), zap.Int("user_id", userID))
				unauthenticated(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(withUserContext(r.Context(), &user)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(errs.NewValidationError("Please authenticate"))
}
