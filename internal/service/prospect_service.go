package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
	"github.com/nurpe/bizops-dashboard/internal/validation"
)

type ProspectService struct {
	repo repository.ProspectRepository
}

func NewProspectService(repo repository.ProspectRepository) *ProspectService {
	return &ProspectService{repo: repo}
}

func (s *ProspectService) List(ctx context.Context, filter repository.ProspectFilter) ([]model.Prospect, error) {
	prospects, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err)
	}
	return prospects, nil
}

func (s *ProspectService) Get(ctx context.Context, id uuid.UUID) (*model.Prospect, error) {
	prospect, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return prospect, nil
}

func (s *ProspectService) Create(ctx context.Context, principal model.Principal, in validation.ProspectInput) (*model.Prospect, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.UserID == nil && principal.UserID != uuid.Nil {
		owner := principal.UserID
		in.UserID = &owner
	}

	prospect := &model.Prospect{}
	in.Apply(prospect)
	if err := s.repo.Create(ctx, prospect); err != nil {
		return nil, storeError(err)
	}
	return prospect, nil
}

func (s *ProspectService) Update(ctx context.Context, id uuid.UUID, in validation.ProspectInput) (*model.Prospect, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prospect, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UserID == nil {
		in.UserID = prospect.UserID
	}

	in.Apply(prospect)
	if err := s.repo.Update(ctx, prospect); err != nil {
		return nil, storeError(err)
	}
	return prospect, nil
}

func (s *ProspectService) Delete(ctx context.Context, id uuid.UUID) error {
	return storeError(s.repo.Delete(ctx, id))
}
