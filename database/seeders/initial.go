package seeders

import (
	"gorm.io/gorm"

	"github.com/Gentle-wave/scelloo-ecommerce-api/app/models"
	"github.com/Gentle-wave/scelloo-ecommerce-api/config"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/auth"
)

func init() {
	Register(&AdminUserSeeder{})
	Register(&SampleProductSeeder{})
}

// AdminUserSeeder stores the configured admin credential in the users
// table so logins survive without the static fallback.
type AdminUserSeeder struct{}

func (s *AdminUserSeeder) Name() string { return "admin_user" }

func (s *AdminUserSeeder) Run(db *gorm.DB) error {
	hash := config.AdminPasswordHash()
	if hash == "" {
		var err error
		if hash, err = auth.HashPassword(config.AdminPassword()); err != nil {
			return err
		}
	}

	user := models.User{Username: config.AdminUsername(), Password: hash}
	return db.Where(models.User{Username: user.Username}).
		Attrs(models.User{Password: user.Password}).
		FirstOrCreate(&user).Error
}

// SampleProductSeeder inserts a handful of products for local development.
type SampleProductSeeder struct{}

func (s *SampleProductSeeder) Name() string { return "sample_products" }

func (s *SampleProductSeeder) Run(db *gorm.DB) error {
	products := []models.Product{
		{Name: "Laptop Pro 15", Price: 1499.99, Description: "15 inch developer laptop", StockQuantity: 25, Category: "electronics"},
		{Name: "Wireless Mouse", Price: 24.5, Description: "Ergonomic 2.4GHz mouse", StockQuantity: 180, Category: "electronics"},
		{Name: "Standing Desk", Price: 399, Description: "Height adjustable desk", StockQuantity: 12, Category: "furniture"},
		{Name: "Office Chair", Price: 189.9, Description: "Mesh back office chair", StockQuantity: 40, Category: "furniture"},
		{Name: "Notebook Set", Price: 9.99, Description: "Pack of three A5 notebooks", StockQuantity: 500, Category: "stationery"},
	}

	for _, p := range products {
		if err := db.Where(models.Product{Name: p.Name}).
			Attrs(p).
			FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}
	return nil
}
