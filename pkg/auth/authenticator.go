package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Credential is a stored username → password-hash record. The raw
// password is never stored.
type Credential struct {
	UserID       uint
	Username     string
	PasswordHash string
}

// ErrCredentialNotFound is returned by CredentialStore implementations
// when no record matches the username.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialStore looks up credential records by username.
type CredentialStore interface {
	FindByUsername(username string) (Credential, error)
}

// ErrInvalidCredentials is the single failure surfaced for both unknown
// usernames and wrong passwords, so callers cannot enumerate users.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash is a fixed, well-formed bcrypt hash (cost 10) compared
// against when the username is unknown, so a failed lookup costs the
// same as a failed password check. Being a constant, it cannot fail to
// construct; the comparison result is always discarded.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Authenticator validates username/password pairs against a CredentialStore.
type Authenticator struct {
	store CredentialStore
}

// NewAuthenticator creates an Authenticator backed by store.
func NewAuthenticator(store CredentialStore) *Authenticator {
	return &Authenticator{store: store}
}

// Validate returns the identity for a matching username/password pair.
// Unknown users and wrong passwords both fail with ErrInvalidCredentials.
func (a *Authenticator) Validate(username, password string) (Identity, error) {
	cred, err := a.store.FindByUsername(username)
	if err != nil {
		CheckPassword(dummyHash, password)
		return Identity{}, ErrInvalidCredentials
	}

	if !CheckPassword(cred.PasswordHash, password) {
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{UserID: cred.UserID, Username: cred.Username}, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate
// using bcrypt's constant-time comparison.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// StaticStore serves a single credential held in memory, typically built
// from process configuration.
type StaticStore struct {
	cred Credential
}

// NewStaticStore creates a one-record store. The record gets the stable
// subject id 1.
func NewStaticStore(username, passwordHash string) *StaticStore {
	return &StaticStore{cred: Credential{
		UserID:       1,
		Username:     username,
		PasswordHash: passwordHash,
	}}
}

func (s *StaticStore) FindByUsername(username string) (Credential, error) {
	if username != s.cred.Username {
		return Credential{}, ErrCredentialNotFound
	}
	return s.cred, nil
}
