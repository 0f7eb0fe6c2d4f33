package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nurpe/bizops-dashboard/internal/auth"
	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
	"github.com/nurpe/bizops-dashboard/internal/validation"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context, principal model.Principal) ([]model.User, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return users, nil
}

// Get returns a user to an admin or to the user themself.
func (s *UserService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.User, error) {
	if !principal.IsAdmin() && principal.UserID != id {
		return nil, ErrPermissionDenied
	}
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, principal model.Principal, in validation.UserInput) (*model.User, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return s.create(ctx, in)
}

func (s *UserService) create(ctx context.Context, in validation.UserInput) (*model.User, error) {
	in.Normalize()
	in.Defaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Name: in.Name, Email: in.Email, Role: in.Role, PasswordHash: hash}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, storeError(err)
	}
	return user, nil
}

// Update replaces name, email and role; the password changes only when given.
func (s *UserService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, in validation.UserInput) (*model.User, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	in.Normalize()
	if err := in.ValidateUpdate(); err != nil {
		return nil, err
	}
	if id == principal.UserID && in.Role != model.RoleAdmin {
		return nil, validation.Field("role", "cannot remove your own admin role")
	}

	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	user.Name = in.Name
	user.Email = in.Email
	user.Role = in.Role
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, storeError(err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if id == principal.UserID {
		return validation.Field("id", "cannot delete your own account")
	}
	return storeError(s.repo.Delete(ctx, id))
}

// RoleByEmail returns the role attached to an email address.
func (s *UserService) RoleByEmail(ctx context.Context, email string) (model.Role, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", validation.Field("email", "cannot be blank")
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", storeError(err)
	}
	return user.Role, nil
}

// EnsureAdmin creates the bootstrap administrator when no user has its email.
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, storeError(err)
	}
	if _, err := s.create(ctx, validation.UserInput{
		Name:     name,
		Email:    email,
		Role:     model.RoleAdmin,
		Password: password,
	}); err != nil {
		return false, err
	}
	return true, nil
}
