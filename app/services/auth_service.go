package services

import (
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/auth"
)

// AuthService validates credentials and issues access tokens.
type AuthService struct {
	authenticator *auth.Authenticator
	issuer        *auth.Issuer
}

func NewAuthService(authenticator *auth.Authenticator, issuer *auth.Issuer) *AuthService {
	return &AuthService{authenticator: authenticator, issuer: issuer}
}

// Login checks the username/password pair and returns a signed token.
// Failures surface as auth.ErrInvalidCredentials without distinguishing
// unknown users from wrong passwords.
func (s *AuthService) Login(username, password string) (string, error) {
	identity, err := s.authenticator.Validate(username, password)
	if err != nil {
		return "", err
	}
	return s.issuer.Issue(identity)
}
