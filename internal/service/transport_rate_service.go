package service

import (
	"context"
	"errors"

	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
	"github.com/nurpe/bizops-dashboard/internal/validation"
)

// DefaultTransportRates are the destinations seeded on a fresh installation.
var DefaultTransportRates = []validation.TransportRateInput{
	{Destination: "Bukavu", RateUSDPerCBM: 185},
	{Destination: "Goma", RateUSDPerCBM: 190},
	{Destination: "Kalemie", RateUSDPerCBM: 140},
	{Destination: "Kananga", RateUSDPerCBM: 150},
	{Destination: "Kasumbalesa", RateUSDPerCBM: 85},
	{Destination: "Kindu", RateUSDPerCBM: 165},
	{Destination: "Kinshasa", RateUSDPerCBM: 180},
	{Destination: "Kisangani", RateUSDPerCBM: 175},
	{Destination: "Kolwezi", RateUSDPerCBM: 110},
	{Destination: "Likasi", RateUSDPerCBM: 100},
	{Destination: "Lubumbashi", RateUSDPerCBM: 95},
	{Destination: "Matadi", RateUSDPerCBM: 170},
	{Destination: "Mbandaka", RateUSDPerCBM: 195},
	{Destination: "Mbuji-Mayi", RateUSDPerCBM: 160},
	{Destination: "Tshikapa", RateUSDPerCBM: 155},
}

type TransportRateService struct {
	repo repository.TransportRateRepository
}

func NewTransportRateService(repo repository.TransportRateRepository) *TransportRateService {
	return &TransportRateService{repo: repo}
}

func (s *TransportRateService) List(ctx context.Context) ([]model.TransportRate, error) {
	rates, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return rates, nil
}

// Upsert creates the rate for a destination or replaces the existing one.
func (s *TransportRateService) Upsert(ctx context.Context, in validation.TransportRateInput) (*model.TransportRate, bool, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, false, err
	}

	rate := &model.TransportRate{Destination: in.Destination, RateUSDPerCBM: in.RateUSDPerCBM}
	created, err := s.repo.Upsert(ctx, rate)
	if err != nil {
		return nil, false, storeError(err)
	}
	return rate, created, nil
}

// Seed adds the default destinations that are missing and leaves existing
// rates untouched. It returns how many were added.
func (s *TransportRateService) Seed(ctx context.Context) (int, error) {
	added := 0
	for _, in := range DefaultTransportRates {
		_, err := s.repo.GetByDestination(ctx, in.Destination)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return added, storeError(err)
		}
		if _, _, err := s.Upsert(ctx, in); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
