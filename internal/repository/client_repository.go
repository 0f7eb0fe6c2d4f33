package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/bizops-dashboard/internal/model"
)

type GormClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) Create(ctx context.Context, client *model.Client) error {
	return translate(r.db.WithContext(ctx).Create(client).Error)
}

func (r *GormClientRepository) List(ctx context.Context, filter ClientFilter) ([]model.Client, error) {
	query := r.db.WithContext(ctx).Model(&model.Client{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(company) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern, pattern)
	}

	var clients []model.Client
	if err := query.Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, translate(err)
	}
	return clients, nil
}

func (r *GormClientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return getByID[model.Client](ctx, r.db, id)
}

func (r *GormClientRepository) Update(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := getByID[model.Client](ctx, tx, client.ID)
		if err != nil {
			return err
		}
		client.CreatedAt = existing.CreatedAt
		return translate(tx.Save(client).Error)
	})
}

func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.Client](ctx, r.db, id)
}
