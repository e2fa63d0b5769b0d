package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/auth"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/response"
)

type identityKey struct{}

// IdentityFromCtx returns the authenticated identity stored by Auth, if any.
func IdentityFromCtx(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(auth.Identity)
	return id, ok
}

// Auth gates a route behind a bearer token. The token is verified with
// issuer and the resulting identity is stored in the request context.
// Requests without a valid, unexpired token never reach the handler.
func Auth(issuer *auth.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				response.Unauthorized(w, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" {
				response.Unauthorized(w, "Unauthorized")
				return
			}

			identity, err := issuer.Verify(token)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					response.Unauthorized(w, "Token expired")
					return
				}
				response.Unauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
