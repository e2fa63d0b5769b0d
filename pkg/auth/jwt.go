// Package auth validates username/password pairs against a credential
// store and mints signed, time-bound identity tokens.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the result of a successful authentication.
type Identity struct {
	UserID   uint
	Username string
}

// Claims holds the typed JWT payload: the username plus the standard
// subject/expiry/issued-at claims.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Token failures surfaced by Verify.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Issuer mints and verifies HS256-signed identity tokens. It holds no
// per-token state, so issued tokens cannot be revoked before expiry.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates an Issuer signing with secret; issued tokens expire
// after ttl.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a signed token carrying {username, sub} plus issued-at
// and expiry claims, and returns the encoded string.
func (i *Issuer) Issue(identity Identity) (string, error) {
	now := i.now()
	claims := Claims{
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(identity.UserID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// Expired tokens fail with ErrTokenExpired; everything else that does not
// parse or verify fails with ErrTokenInvalid.
func (i *Issuer) Verify(token string) (Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{},
		func(*jwt.Token) (interface{}, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return i.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Identity{}, ErrTokenInvalid
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return Identity{}, ErrTokenInvalid
	}

	return Identity{UserID: uint(userID), Username: claims.Username}, nil
}
