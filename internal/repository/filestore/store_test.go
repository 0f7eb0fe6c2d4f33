package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
)

func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func openTestStore(t *testing.T, opts ...Option) (repository.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	store, err := NewStore(path, opts...)
	require.NoError(t, err)
	return store, path
}

func TestOpenCreatesDocument(t *testing.T) {
	_, path := openTestStore(t)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"clients"`)
}

func TestOpenRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	require.ErrorIs(t, err, repository.ErrUnavailable)
}

func TestClientLifecycle(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t, WithClock(fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))))

	first := &model.Client{Name: "Alpha", Status: model.ClientStatusActive}
	second := &model.Client{Name: "Beta", Status: model.ClientStatusInactive, Company: "Kivu Trading"}
	require.NoError(t, store.Clients.Create(ctx, first))
	require.NoError(t, store.Clients.Create(ctx, second))
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	list, err := store.Clients.List(ctx, repository.ClientFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Beta", list[0].Name)
	assert.Equal(t, "Alpha", list[1].Name)

	list, err = store.Clients.List(ctx, repository.ClientFilter{Search: "kivu"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	list, err = store.Clients.List(ctx, repository.ClientFilter{Status: model.ClientStatusActive})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)

	createdAt := first.CreatedAt
	first.Name = "Alpha SARL"
	first.CreatedAt = time.Time{}
	require.NoError(t, store.Clients.Update(ctx, first))
	assert.True(t, createdAt.Equal(first.CreatedAt))
	assert.True(t, first.UpdatedAt.After(createdAt))

	reopened, err := NewStore(path)
	require.NoError(t, err)
	got, err := reopened.Clients.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha SARL", got.Name)

	require.NoError(t, store.Clients.Delete(ctx, first.ID))
	_, err = store.Clients.Get(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, store.Clients.Delete(ctx, first.ID), repository.ErrNotFound)
	assert.ErrorIs(t, store.Clients.Update(ctx, &model.Client{Base: model.Base{ID: uuid.New()}}), repository.ErrNotFound)
}

func TestSameTimestampKeepsLatestFirst(t *testing.T) {
	ctx := context.Background()
	instant := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store, _ := openTestStore(t, WithClock(func() time.Time { return instant }))

	for _, name := range []string{"one", "two", "three"} {
		require.NoError(t, store.Prospects.Create(ctx, &model.Prospect{Name: name, Stage: model.ProspectStageNew}))
	}

	list, err := store.Prospects.List(ctx, repository.ProspectFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "three", list[0].Name)
	assert.Equal(t, "one", list[2].Name)
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	id := uuid.New()
	require.NoError(t, store.Prospects.Create(ctx, &model.Prospect{Base: model.Base{ID: id}, Name: "a"}))
	err := store.Prospects.Create(ctx, &model.Prospect{Base: model.Base{ID: id}, Name: "b"})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestTransportRateUpsert(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	created, err := store.TransportRates.Upsert(ctx, &model.TransportRate{Destination: "Matadi", RateUSDPerCBM: 170})
	require.NoError(t, err)
	assert.True(t, created)
	_, err = store.TransportRates.Upsert(ctx, &model.TransportRate{Destination: "Goma", RateUSDPerCBM: 190})
	require.NoError(t, err)

	created, err = store.TransportRates.Upsert(ctx, &model.TransportRate{Destination: "Matadi", RateUSDPerCBM: 175})
	require.NoError(t, err)
	assert.False(t, created)

	rates, err := store.TransportRates.List(ctx)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "Goma", rates[0].Destination)
	assert.Equal(t, 175.0, rates[1].RateUSDPerCBM)

	rate, err := store.TransportRates.GetByDestination(ctx, "Matadi")
	require.NoError(t, err)
	assert.Equal(t, 175.0, rate.RateUSDPerCBM)

	_, err = store.TransportRates.GetByDestination(ctx, "Kindu")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPriceReferenceFilters(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	refs := []*model.PriceReference{
		{Name: "mine", StructureSociety: model.StructureSocietyMineOwned, CardinalZone: model.CardinalZoneSouth, Rate: 2800},
		{Name: "west", StructureSociety: model.StructureSocietyOther, CardinalZone: model.CardinalZoneWest, Rate: 2800},
		{Name: "east", StructureSociety: model.StructureSocietyOther, CardinalZone: model.CardinalZoneEast, Rate: 2800},
	}
	for _, ref := range refs {
		require.NoError(t, store.PriceReferences.Create(ctx, ref))
	}

	list, err := store.PriceReferences.List(ctx, repository.PriceReferenceFilter{StructureSociety: model.StructureSocietyOther})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = store.PriceReferences.List(ctx, repository.PriceReferenceFilter{
		StructureSociety: model.StructureSocietyOther,
		CardinalZone:     model.CardinalZoneWest,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "west", list[0].Name)
}

func TestUserPasswordHashPersists(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t)

	user := &model.User{Name: "Ada", Email: "ada@example.com", Role: model.RoleAdmin, PasswordHash: "hash"}
	require.NoError(t, store.Users.Create(ctx, user))

	err := store.Users.Create(ctx, &model.User{Name: "Other", Email: "ADA@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	reopened, err := NewStore(path)
	require.NoError(t, err)
	got, err := reopened.Users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, user.ID, got.ID)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"passwordHash": "hash"`)
}
