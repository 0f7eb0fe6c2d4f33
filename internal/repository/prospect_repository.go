package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/bizops-dashboard/internal/model"
)

type GormProspectRepository struct {
	db *gorm.DB
}

func NewProspectRepository(db *gorm.DB) *GormProspectRepository {
	return &GormProspectRepository{db: db}
}

func (r *GormProspectRepository) Create(ctx context.Context, prospect *model.Prospect) error {
	return translate(r.db.WithContext(ctx).Create(prospect).Error)
}

func (r *GormProspectRepository) List(ctx context.Context, filter ProspectFilter) ([]model.Prospect, error) {
	query := r.db.WithContext(ctx).Model(&model.Prospect{})
	if filter.Stage != "" {
		query = query.Where("stage = ?", filter.Stage)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(company) LIKE ?", pattern, pattern)
	}

	var prospects []model.Prospect
	if err := query.Order("created_at DESC").Find(&prospects).Error; err != nil {
		return nil, translate(err)
	}
	return prospects, nil
}

func (r *GormProspectRepository) Get(ctx context.Context, id uuid.UUID) (*model.Prospect, error) {
	return getByID[model.Prospect](ctx, r.db, id)
}

func (r *GormProspectRepository) Update(ctx context.Context, prospect *model.Prospect) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := getByID[model.Prospect](ctx, tx, prospect.ID)
		if err != nil {
			return err
		}
		prospect.CreatedAt = existing.CreatedAt
		return translate(tx.Save(prospect).Error)
	})
}

func (r *GormProspectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.Prospect](ctx, r.db, id)
}
