package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/auth"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	authenticator := auth.NewAuthenticator(auth.NewStaticStore("admin", hash))
	issuer := auth.NewIssuer("test-secret", time.Hour)
	return NewAuthService(authenticator, issuer)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	issuer := auth.NewIssuer("test-secret", time.Hour)
	identity, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", identity.Username)
	assert.Equal(t, uint(1), identity.UserID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login("nobody", "admin123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
