package service

import (
	"errors"
	"fmt"

	"github.com/nurpe/bizops-dashboard/internal/repository"
	"github.com/nurpe/bizops-dashboard/internal/validation"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = validation.ErrInvalid
	ErrUnauthorized     = errors.New("invalid credentials")
	ErrConflict         = errors.New("already exists")
	ErrUnavailable      = repository.ErrUnavailable
)

// storeError maps repository errors onto service errors; anything else is
// returned unchanged for the caller to report as an internal failure.
func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}
