package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/todoapp/todo-api-go/internal/crypto"
)

// AuthHeader is the custom request header carrying the bearer token. The API
// contract uses this header rather than the standard Authorization scheme.
const AuthHeader = "todo-app"

type contextKey string

const claimsKey contextKey = "claims"

// TokenAuth returns middleware that verifies the token in the todo-app header
// before allowing the request through. Valid claims are attached to the
// request context.
func TokenAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(AuthHeader)
			if token == "" {
				writeUnauthorized(w)
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts the authenticated user's claims from the request
// context.
func ClaimsFromContext(ctx context.Context) (*crypto.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*crypto.Claims)
	return claims, ok
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"status":  http.StatusUnauthorized,
		"message": "User not authorized! Please login.",
	})
}
