package filestore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
)

func matches(search string, values ...string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), search) {
			return true
		}
	}
	return false
}

func sameUser(filter, owner *uuid.UUID) bool {
	return filter == nil || (owner != nil && *owner == *filter)
}

type clientRepository struct{ file *File }

func (r *clientRepository) Create(_ context.Context, client *model.Client) error {
	return r.file.write(func(doc *document) error {
		return insert(r.file, &doc.Clients, client)
	})
}

func (r *clientRepository) List(_ context.Context, filter repository.ClientFilter) ([]model.Client, error) {
	var out []model.Client
	err := r.file.read(func(doc *document) error {
		out = newestFirst(doc.Clients, func(c *model.Client) bool {
			return (filter.Status == "" || c.Status == filter.Status) &&
				sameUser(filter.UserID, c.UserID) &&
				matches(filter.Search, c.Name, c.Company, c.Email)
		})
		return nil
	})
	return out, err
}

func (r *clientRepository) Get(_ context.Context, id uuid.UUID) (*model.Client, error) {
	var out *model.Client
	err := r.file.read(func(doc *document) error {
		var err error
		out, err = find(doc.Clients, id)
		return err
	})
	return out, err
}

func (r *clientRepository) Update(_ context.Context, client *model.Client) error {
	return r.file.write(func(doc *document) error {
		return replace(r.file, doc.Clients, client)
	})
}

func (r *clientRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.file.write(func(doc *document) error {
		return remove[model.Client](&doc.Clients, id)
	})
}

type prospectRepository struct{ file *File }

func (r *prospectRepository) Create(_ context.Context, prospect *model.Prospect) error {
	return r.file.write(func(doc *document) error {
		return insert(r.file, &doc.Prospects, prospect)
	})
}

func (r *prospectRepository) List(_ context.Context, filter repository.ProspectFilter) ([]model.Prospect, error) {
	var out []model.Prospect
	err := r.file.read(func(doc *document) error {
		out = newestFirst(doc.Prospects, func(p *model.Prospect) bool {
			return (filter.Stage == "" || p.Stage == filter.Stage) &&
				sameUser(filter.UserID, p.UserID) &&
				matches(filter.Search, p.Name, p.Company)
		})
		return nil
	})
	return out, err
}

func (r *prospectRepository) Get(_ context.Context, id uuid.UUID) (*model.Prospect, error) {
	var out *model.Prospect
	err := r.file.read(func(doc *document) error {
		var err error
		out, err = find(doc.Prospects, id)
		return err
	})
	return out, err
}

func (r *prospectRepository) Update(_ context.Context, prospect *model.Prospect) error {
	return r.file.write(func(doc *document) error {
		return replace(r.file, doc.Prospects, prospect)
	})
}

func (r *prospectRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.file.write(func(doc *document) error {
		return remove[model.Prospect](&doc.Prospects, id)
	})
}

type transportRateRepository struct{ file *File }

func (r *transportRateRepository) List(_ context.Context) ([]model.TransportRate, error) {
	var out []model.TransportRate
	err := r.file.read(func(doc *document) error {
		out = append(out, doc.TransportRates...)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Destination < out[j].Destination
		})
		return nil
	})
	return out, err
}

func (r *transportRateRepository) GetByDestination(_ context.Context, destination string) (*model.TransportRate, error) {
	var out *model.TransportRate
	err := r.file.read(func(doc *document) error {
		for _, rate := range doc.TransportRates {
			if rate.Destination == destination {
				found := rate
				out = &found
				return nil
			}
		}
		return repository.ErrNotFound
	})
	return out, err
}

func (r *transportRateRepository) Upsert(_ context.Context, rate *model.TransportRate) (bool, error) {
	created := false
	err := r.file.write(func(doc *document) error {
		for i := range doc.TransportRates {
			existing := &doc.TransportRates[i]
			if existing.Destination != rate.Destination {
				continue
			}
			existing.RateUSDPerCBM = rate.RateUSDPerCBM
			existing.UpdatedAt = r.file.now().UTC()
			*rate = *existing
			return nil
		}
		created = true
		return insert(r.file, &doc.TransportRates, rate)
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

type priceReferenceRepository struct{ file *File }

func (r *priceReferenceRepository) Create(_ context.Context, ref *model.PriceReference) error {
	return r.file.write(func(doc *document) error {
		return insert(r.file, &doc.PriceReferences, ref)
	})
}

func (r *priceReferenceRepository) List(_ context.Context, filter repository.PriceReferenceFilter) ([]model.PriceReference, error) {
	var out []model.PriceReference
	err := r.file.read(func(doc *document) error {
		out = newestFirst(doc.PriceReferences, func(p *model.PriceReference) bool {
			return (filter.StructureSociety == "" || p.StructureSociety == filter.StructureSociety) &&
				(filter.CardinalZone == "" || p.CardinalZone == filter.CardinalZone) &&
				sameUser(filter.UserID, p.UserID)
		})
		return nil
	})
	return out, err
}

func (r *priceReferenceRepository) Get(_ context.Context, id uuid.UUID) (*model.PriceReference, error) {
	var out *model.PriceReference
	err := r.file.read(func(doc *document) error {
		var err error
		out, err = find(doc.PriceReferences, id)
		return err
	})
	return out, err
}

func (r *priceReferenceRepository) Update(_ context.Context, ref *model.PriceReference) error {
	return r.file.write(func(doc *document) error {
		return replace(r.file, doc.PriceReferences, ref)
	})
}

func (r *priceReferenceRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.file.write(func(doc *document) error {
		return remove[model.PriceReference](&doc.PriceReferences, id)
	})
}

type userRepository struct{ file *File }

func toRecord(u *model.User) userRecord {
	return userRecord{User: *u, PasswordHash: u.PasswordHash}
}

func fromRecord(rec userRecord) model.User {
	u := rec.User
	u.PasswordHash = rec.PasswordHash
	return u
}

func (r *userRepository) emailTaken(doc *document, email string, except uuid.UUID) bool {
	for _, rec := range doc.Users {
		if rec.ID != except && strings.EqualFold(rec.Email, email) {
			return true
		}
	}
	return false
}

func (r *userRepository) Create(_ context.Context, user *model.User) error {
	return r.file.write(func(doc *document) error {
		if r.emailTaken(doc, user.Email, uuid.Nil) {
			return fmt.Errorf("%w: email %s", repository.ErrConflict, user.Email)
		}
		rec := toRecord(user)
		if err := insert(r.file, &doc.Users, &rec); err != nil {
			return err
		}
		*user = fromRecord(rec)
		return nil
	})
}

func (r *userRepository) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	err := r.file.read(func(doc *document) error {
		for _, rec := range newestFirst[userRecord](doc.Users, nil) {
			out = append(out, fromRecord(rec))
		}
		return nil
	})
	return out, err
}

func (r *userRepository) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	var out *model.User
	err := r.file.read(func(doc *document) error {
		rec, err := find(doc.Users, id)
		if err != nil {
			return err
		}
		u := fromRecord(*rec)
		out = &u
		return nil
	})
	return out, err
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	email = strings.TrimSpace(email)
	var out *model.User
	err := r.file.read(func(doc *document) error {
		for _, rec := range doc.Users {
			if strings.EqualFold(rec.Email, email) {
				u := fromRecord(rec)
				out = &u
				return nil
			}
		}
		return repository.ErrNotFound
	})
	return out, err
}

func (r *userRepository) Update(_ context.Context, user *model.User) error {
	return r.file.write(func(doc *document) error {
		if r.emailTaken(doc, user.Email, user.ID) {
			return fmt.Errorf("%w: email %s", repository.ErrConflict, user.Email)
		}
		rec := toRecord(user)
		if err := replace(r.file, doc.Users, &rec); err != nil {
			return err
		}
		*user = fromRecord(rec)
		return nil
	})
}

func (r *userRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.file.write(func(doc *document) error {
		return remove[userRecord](&doc.Users, id)
	})
}
