// Package seeders populates a migrated database with the default admin
// account and a small sample catalogue.
package seeders

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/logger"
)

// Seeder populates one slice of the database. Seeders must be idempotent.
type Seeder interface {
	Name() string
	Run(db *gorm.DB) error
}

var registry []Seeder

func Register(s Seeder) {
	registry = append(registry, s)
}

// RunAll executes every registered seeder in registration order.
func RunAll(db *gorm.DB) error {
	for _, s := range registry {
		logger.Info("seeding", "name", s.Name())
		fmt.Printf("  Seeding: %s\n", s.Name())

		if err := s.Run(db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
	}
	return nil
}
