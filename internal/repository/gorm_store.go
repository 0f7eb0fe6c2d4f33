package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewGormStore builds a Store over a relational connection.
func NewGormStore(db *gorm.DB) Store {
	return Store{
		Clients:         NewClientRepository(db),
		Prospects:       NewProspectRepository(db),
		TransportRates:  NewTransportRateRepository(db),
		PriceReferences: NewPriceReferenceRepository(db),
		Users:           NewUserRepository(db),
	}
}

func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

func getByID[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) (*T, error) {
	var row T
	if err := db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	var row T
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&row)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
