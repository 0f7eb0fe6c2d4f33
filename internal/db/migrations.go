package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/bizops-dashboard/internal/model"
)

// Statements that run after AutoMigrate. They must stay valid on both
// PostgreSQL and SQLite.
var migrationStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_clients_created_at_desc ON clients (created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_prospects_created_at_desc ON prospects (created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_price_references_zone ON price_references (structure_society, cardinal_zone);`,
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.Prospect{},
		&model.TransportRate{},
		&model.PriceReference{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
