package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/bizops-dashboard/internal/model"
)

type ClientFilter struct {
	Status model.ClientStatus
	UserID *uuid.UUID
	Search string
}

type ProspectFilter struct {
	Stage  model.ProspectStage
	UserID *uuid.UUID
	Search string
}

type PriceReferenceFilter struct {
	StructureSociety model.StructureSociety
	CardinalZone     model.CardinalZone
	UserID           *uuid.UUID
}

// ClientRepository lists newest first.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	List(ctx context.Context, filter ClientFilter) ([]model.Client, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Client, error)
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProspectRepository interface {
	Create(ctx context.Context, prospect *model.Prospect) error
	List(ctx context.Context, filter ProspectFilter) ([]model.Prospect, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Prospect, error)
	Update(ctx context.Context, prospect *model.Prospect) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransportRateRepository lists by destination, alphabetically.
type TransportRateRepository interface {
	List(ctx context.Context) ([]model.TransportRate, error)
	GetByDestination(ctx context.Context, destination string) (*model.TransportRate, error)
	// Upsert creates the rate or updates the one with the same destination.
	Upsert(ctx context.Context, rate *model.TransportRate) (created bool, err error)
}

type PriceReferenceRepository interface {
	Create(ctx context.Context, ref *model.PriceReference) error
	List(ctx context.Context, filter PriceReferenceFilter) ([]model.PriceReference, error)
	Get(ctx context.Context, id uuid.UUID) (*model.PriceReference, error)
	Update(ctx context.Context, ref *model.PriceReference) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Store groups the repositories of one persistence backend.
type Store struct {
	Clients         ClientRepository
	Prospects       ProspectRepository
	TransportRates  TransportRateRepository
	PriceReferences PriceReferenceRepository
	Users           UserRepository
}
