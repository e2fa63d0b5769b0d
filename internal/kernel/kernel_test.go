package kernel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/auth"
)

// stubStore scripts one FindByUsername outcome.
type stubStore struct {
	cred auth.Credential
	err  error
}

func (s *stubStore) FindByUsername(string) (auth.Credential, error) {
	return s.cred, s.err
}

func TestFallbackStorePrefersPrimary(t *testing.T) {
	store := &fallbackStore{
		primary:  &stubStore{cred: auth.Credential{UserID: 7, Username: "admin", PasswordHash: "db-hash"}},
		fallback: &stubStore{cred: auth.Credential{UserID: 1, Username: "admin", PasswordHash: "static-hash"}},
	}

	cred, err := store.FindByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, uint(7), cred.UserID)
	assert.Equal(t, "db-hash", cred.PasswordHash)
}

func TestFallbackStoreFallsBackOnUnknownUser(t *testing.T) {
	store := &fallbackStore{
		primary:  &stubStore{err: auth.ErrCredentialNotFound},
		fallback: &stubStore{cred: auth.Credential{UserID: 1, Username: "admin", PasswordHash: "static-hash"}},
	}

	cred, err := store.FindByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, "static-hash", cred.PasswordHash)
}

func TestFallbackStorePropagatesPrimaryFailure(t *testing.T) {
	dbDown := errors.New("connection refused")
	store := &fallbackStore{
		primary:  &stubStore{err: dbDown},
		fallback: &stubStore{cred: auth.Credential{UserID: 1, Username: "admin", PasswordHash: "static-hash"}},
	}

	_, err := store.FindByUsername("admin")
	require.Error(t, err)
	assert.ErrorIs(t, err, dbDown)
}
