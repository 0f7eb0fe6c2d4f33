package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/bizops-dashboard/internal/model"
)

type GormPriceReferenceRepository struct {
	db *gorm.DB
}

func NewPriceReferenceRepository(db *gorm.DB) *GormPriceReferenceRepository {
	return &GormPriceReferenceRepository{db: db}
}

func (r *GormPriceReferenceRepository) Create(ctx context.Context, ref *model.PriceReference) error {
	return translate(r.db.WithContext(ctx).Create(ref).Error)
}

func (r *GormPriceReferenceRepository) List(ctx context.Context, filter PriceReferenceFilter) ([]model.PriceReference, error) {
	query := r.db.WithContext(ctx).Model(&model.PriceReference{})
	if filter.StructureSociety != "" {
		query = query.Where("structure_society = ?", filter.StructureSociety)
	}
	if filter.CardinalZone != "" {
		query = query.Where("cardinal_zone = ?", filter.CardinalZone)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var refs []model.PriceReference
	if err := query.Order("created_at DESC").Find(&refs).Error; err != nil {
		return nil, translate(err)
	}
	return refs, nil
}

func (r *GormPriceReferenceRepository) Get(ctx context.Context, id uuid.UUID) (*model.PriceReference, error) {
	return getByID[model.PriceReference](ctx, r.db, id)
}

func (r *GormPriceReferenceRepository) Update(ctx context.Context, ref *model.PriceReference) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := getByID[model.PriceReference](ctx, tx, ref.ID)
		if err != nil {
			return err
		}
		ref.CreatedAt = existing.CreatedAt
		return translate(tx.Save(ref).Error)
	})
}

func (r *GormPriceReferenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.PriceReference](ctx, r.db, id)
}
