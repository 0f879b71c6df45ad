package middleware

import (
	"context"
	"net/http"
	"strings"

	"remotesync/internal/clients/identity"
	"remotesync/internal/http/api"

	"github.com/go-chi/render"
)

type key int

const userKey key = 1

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TokenVerifier
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*identity.User, error)
}

// Auth re-verifies the bearer token against the identity provider on every
// request and stores the resolved user in the request context.
func Auth(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "missing or invalid Authorization header"))
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")

			user, err := verifier.Verify(r.Context(), token)
			if err != nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user placed by Auth.
func UserFromContext(ctx context.Context) (*identity.User, bool) {
	user, ok := ctx.Value(userKey).(*identity.User)
	return user, ok
}

// WithUser is a test helper for building pre-authenticated contexts.
func WithUser(ctx context.Context, user *identity.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}
