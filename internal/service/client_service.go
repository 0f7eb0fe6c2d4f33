package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
	"github.com/nurpe/bizops-dashboard/internal/validation"
)

type ClientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) List(ctx context.Context, filter repository.ClientFilter) ([]model.Client, error) {
	clients, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err)
	}
	return clients, nil
}

func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	client, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return client, nil
}

// Create stores a new client owned by the caller unless the input names an owner.
func (s *ClientService) Create(ctx context.Context, principal model.Principal, in validation.ClientInput) (*model.Client, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.UserID == nil && principal.UserID != uuid.Nil {
		owner := principal.UserID
		in.UserID = &owner
	}

	client := &model.Client{}
	in.Apply(client)
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, storeError(err)
	}
	return client, nil
}

// Update replaces every editable field of the client.
func (s *ClientService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, in validation.ClientInput) (*model.Client, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	client, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageClient(principal, client) {
		return nil, ErrPermissionDenied
	}
	if in.UserID == nil {
		in.UserID = client.UserID
	}

	in.Apply(client)
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, storeError(err)
	}
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	client, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !canManageClient(principal, client) {
		return ErrPermissionDenied
	}
	return storeError(s.repo.Delete(ctx, id))
}

// canManageClient lets admins change any client and commercials change the
// clients they own or that nobody owns.
func canManageClient(principal model.Principal, client *model.Client) bool {
	if principal.IsAdmin() {
		return true
	}
	return client.UserID == nil || client.OwnedBy(principal.UserID)
}
