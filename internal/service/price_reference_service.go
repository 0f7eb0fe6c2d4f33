package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/pricing"
	"github.com/nurpe/bizops-dashboard/internal/repository"
	"github.com/nurpe/bizops-dashboard/internal/validation"
)

type PriceReferenceService struct {
	repo repository.PriceReferenceRepository
}

func NewPriceReferenceService(repo repository.PriceReferenceRepository) *PriceReferenceService {
	return &PriceReferenceService{repo: repo}
}

func (s *PriceReferenceService) List(ctx context.Context, filter repository.PriceReferenceFilter) ([]model.PriceReference, error) {
	refs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err)
	}
	return refs, nil
}

// ListNonMining lists the references of companies outside the mining sector.
func (s *PriceReferenceService) ListNonMining(ctx context.Context, zone model.CardinalZone) ([]model.PriceReference, error) {
	return s.List(ctx, repository.PriceReferenceFilter{
		StructureSociety: model.StructureSocietyOther,
		CardinalZone:     zone,
	})
}

func (s *PriceReferenceService) Get(ctx context.Context, id uuid.UUID) (*model.PriceReference, error) {
	ref, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return ref, nil
}

// GetNonMining reports ErrNotFound for references owned by mining companies.
func (s *PriceReferenceService) GetNonMining(ctx context.Context, id uuid.UUID) (*model.PriceReference, error) {
	ref, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ref.IsNonMining() {
		return nil, ErrNotFound
	}
	return ref, nil
}

// Preview computes the totals of an input without storing it.
func (s *PriceReferenceService) Preview(in validation.PriceReferenceInput) (*model.PriceReference, error) {
	ref := &model.PriceReference{}
	if err := s.build(&in, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *PriceReferenceService) Create(ctx context.Context, principal model.Principal, in validation.PriceReferenceInput) (*model.PriceReference, error) {
	if in.UserID == nil && principal.UserID != uuid.Nil {
		owner := principal.UserID
		in.UserID = &owner
	}

	ref := &model.PriceReference{}
	if err := s.build(&in, ref); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, ref); err != nil {
		return nil, storeError(err)
	}
	return ref, nil
}

// Update replaces the reference and recomputes every derived total.
func (s *PriceReferenceService) Update(ctx context.Context, id uuid.UUID, in validation.PriceReferenceInput) (*model.PriceReference, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ref, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UserID == nil {
		in.UserID = ref.UserID
	}
	if err := s.build(&in, ref); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, ref); err != nil {
		return nil, storeError(err)
	}
	return ref, nil
}

func (s *PriceReferenceService) Delete(ctx context.Context, id uuid.UUID) error {
	return storeError(s.repo.Delete(ctx, id))
}

func (s *PriceReferenceService) build(in *validation.PriceReferenceInput, ref *model.PriceReference) error {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}
	if err := pricing.Apply(*in, ref); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
