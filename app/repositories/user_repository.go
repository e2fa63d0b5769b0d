package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Gentle-wave/scelloo-ecommerce-api/app/models"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/auth"
)

// UserRepository handles database operations for User and doubles as the
// auth.CredentialStore over the users table.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername implements auth.CredentialStore.
func (r *UserRepository) FindByUsername(username string) (auth.Credential, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auth.Credential{}, auth.ErrCredentialNotFound
		}
		return auth.Credential{}, err
	}

	return auth.Credential{
		UserID:       user.ID,
		Username:     user.Username,
		PasswordHash: user.Password,
	}, nil
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}
