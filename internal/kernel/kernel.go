// Package kernel assembles the HTTP application: middleware stack,
// authentication wiring, services, and the route table.
package kernel

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Gentle-wave/scelloo-ecommerce-api/app/controllers"
	"github.com/Gentle-wave/scelloo-ecommerce-api/app/repositories"
	"github.com/Gentle-wave/scelloo-ecommerce-api/app/routes"
	"github.com/Gentle-wave/scelloo-ecommerce-api/app/services"
	"github.com/Gentle-wave/scelloo-ecommerce-api/config"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/auth"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/metrics"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/middleware"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/reqid"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/router"
)

// requestsPerMinute caps each client IP across all API routes.
const requestsPerMinute = 10

// Build wires the full application router against db.
func Build(db *gorm.DB) (*router.Router, error) {
	issuer := auth.NewIssuer(config.JWTSecret(), time.Duration(config.JWTTTLHours())*time.Hour)

	credentials, err := credentialStore(db)
	if err != nil {
		return nil, err
	}

	catalog := services.NewCatalogService(repositories.NewProductRepository(db))
	login := services.NewAuthService(auth.NewAuthenticator(credentials), issuer)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(requestsPerMinute, time.Minute),
	)
	r.HandleFunc("/metrics", metrics.Handler())

	routes.Register(r,
		controllers.NewProductController(catalog),
		controllers.NewAuthController(login),
		middleware.Auth(issuer),
	)

	return r, nil
}

// credentialStore builds the login lookup chain: the users table first,
// then the configured admin credential. The admin password is hashed at
// startup unless an explicit hash is configured.
func credentialStore(db *gorm.DB) (auth.CredentialStore, error) {
	hash := config.AdminPasswordHash()
	if hash == "" {
		var err error
		if hash, err = auth.HashPassword(config.AdminPassword()); err != nil {
			return nil, fmt.Errorf("kernel: hash admin password: %w", err)
		}
	}

	static := auth.NewStaticStore(config.AdminUsername(), hash)
	if db == nil {
		return static, nil
	}

	return &fallbackStore{
		primary:  repositories.NewUserRepository(db),
		fallback: static,
	}, nil
}

// fallbackStore consults primary first and falls back only when the
// username is genuinely unknown there, so the configured admin account
// works even on an unseeded database. Other primary errors (a database
// outage, say) propagate instead of masquerading as a miss.
type fallbackStore struct {
	primary  auth.CredentialStore
	fallback auth.CredentialStore
}

func (s *fallbackStore) FindByUsername(username string) (auth.Credential, error) {
	cred, err := s.primary.FindByUsername(username)
	if err == nil {
		return cred, nil
	}
	if !errors.Is(err, auth.ErrCredentialNotFound) {
		return auth.Credential{}, err
	}
	return s.fallback.FindByUsername(username)
}
