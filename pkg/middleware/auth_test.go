package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/auth"
)

func protected(t *testing.T, issuer *auth.Issuer) http.Handler {
	t.Helper()
	return Auth(issuer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromCtx(r.Context())
		require.True(t, ok)
		w.Write([]byte(id.Username)) //nolint:errcheck
	}))
}

func TestAuthPassesValidToken(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)
	token, err := issuer.Issue(auth.Identity{UserID: 1, Username: "admin"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(t, issuer).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)

	rec := httptest.NewRecorder()
	protected(t, issuer).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

func TestAuthRejectsForeignToken(t *testing.T) {
	other := auth.NewIssuer("other-secret", time.Hour)
	token, err := other.Issue(auth.Identity{UserID: 1, Username: "admin"})
	require.NoError(t, err)

	issuer := auth.NewIssuer("secret", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(t, issuer).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAuthRejectsBasicScheme(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic YWRtaW46YWRtaW4=")
	rec := httptest.NewRecorder()
	protected(t, issuer).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimitBlocksAfterBudget(t *testing.T) {
	handler := RateLimit(3, time.Hour)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:1234"

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// a different client still has its own budget
	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "198.51.100.1:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}
