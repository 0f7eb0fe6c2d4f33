package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nurpe/bizops-dashboard/internal/model"
)

type GormTransportRateRepository struct {
	db *gorm.DB
}

func NewTransportRateRepository(db *gorm.DB) *GormTransportRateRepository {
	return &GormTransportRateRepository{db: db}
}

func (r *GormTransportRateRepository) List(ctx context.Context) ([]model.TransportRate, error) {
	var rates []model.TransportRate
	if err := r.db.WithContext(ctx).Order("destination ASC").Find(&rates).Error; err != nil {
		return nil, translate(err)
	}
	return rates, nil
}

func (r *GormTransportRateRepository) GetByDestination(ctx context.Context, destination string) (*model.TransportRate, error) {
	var rate model.TransportRate
	if err := r.db.WithContext(ctx).Where("destination = ?", destination).Take(&rate).Error; err != nil {
		return nil, translate(err)
	}
	return &rate, nil
}

func (r *GormTransportRateRepository) Upsert(ctx context.Context, rate *model.TransportRate) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.TransportRate
		err := tx.Where("destination = ?", rate.Destination).Take(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			return translate(tx.Create(rate).Error)
		case err != nil:
			return translate(err)
		}

		existing.RateUSDPerCBM = rate.RateUSDPerCBM
		if err := tx.Save(&existing).Error; err != nil {
			return translate(err)
		}
		*rate = existing
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}
