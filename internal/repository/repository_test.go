package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nurpe/bizops-dashboard/internal/db"
	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
)

func newTestStore(t *testing.T) repository.Store {
	t.Helper()
	current := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	database, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			current = current.Add(time.Minute)
			return current
		},
	})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(database))
	return repository.NewGormStore(database)
}

func TestClientRepository(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := uuid.New()

	first := &model.Client{Name: "Alpha", Email: "contact@alpha.cd", Status: model.ClientStatusActive, UserID: &owner}
	second := &model.Client{Name: "Beta", Company: "Kivu Logistics", Status: model.ClientStatusInactive}
	require.NoError(t, store.Clients.Create(ctx, first))
	require.NoError(t, store.Clients.Create(ctx, second))
	assert.NotEqual(t, uuid.Nil, first.ID)

	list, err := store.Clients.List(ctx, repository.ClientFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	list, err = store.Clients.List(ctx, repository.ClientFilter{Search: "KIVU"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Beta", list[0].Name)

	list, err = store.Clients.List(ctx, repository.ClientFilter{UserID: &owner})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)

	first.Phone = "+243 81 000 0000"
	require.NoError(t, store.Clients.Update(ctx, first))
	got, err := store.Clients.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "+243 81 000 0000", got.Phone)
	require.NotNil(t, got.UserID)
	assert.Equal(t, owner, *got.UserID)

	require.NoError(t, store.Clients.Delete(ctx, first.ID))
	_, err = store.Clients.Get(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, store.Clients.Delete(ctx, first.ID), repository.ErrNotFound)
	assert.ErrorIs(t, store.Clients.Update(ctx, &model.Client{Base: model.Base{ID: uuid.New()}, Name: "x"}), repository.ErrNotFound)
}

func TestProspectRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Prospects.Create(ctx, &model.Prospect{Name: "Lead A", Stage: model.ProspectStageNew}))
	require.NoError(t, store.Prospects.Create(ctx, &model.Prospect{Name: "Lead B", Stage: model.ProspectStageWon}))

	list, err := store.Prospects.List(ctx, repository.ProspectFilter{Stage: model.ProspectStageWon})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lead B", list[0].Name)

	list, err = store.Prospects.List(ctx, repository.ProspectFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Lead B", list[0].Name)
}

func TestTransportRateUpsert(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created, err := store.TransportRates.Upsert(ctx, &model.TransportRate{Destination: "Kolwezi", RateUSDPerCBM: 110})
	require.NoError(t, err)
	assert.True(t, created)

	rate := &model.TransportRate{Destination: "Kolwezi", RateUSDPerCBM: 120}
	created, err = store.TransportRates.Upsert(ctx, rate)
	require.NoError(t, err)
	assert.False(t, created)
	assert.NotEqual(t, uuid.Nil, rate.ID)

	_, err = store.TransportRates.Upsert(ctx, &model.TransportRate{Destination: "Bukavu", RateUSDPerCBM: 185})
	require.NoError(t, err)

	rates, err := store.TransportRates.List(ctx)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "Bukavu", rates[0].Destination)
	assert.Equal(t, 120.0, rates[1].RateUSDPerCBM)
}

func TestPriceReferenceRepository(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	ref := &model.PriceReference{
		Name:             "Gasoil Sud",
		StructureSociety: model.StructureSocietyOther,
		CardinalZone:     model.CardinalZoneSouth,
		Rate:             2800,
		Fiscality:        model.Fiscality{VAT: 100, ImportVAT: 400, NetVAT: -300},
		Parafiscality:    model.Parafiscality{MarkingFee: 12.5, Total: 12.5},
	}
	require.NoError(t, store.PriceReferences.Create(ctx, ref))
	require.NoError(t, store.PriceReferences.Create(ctx, &model.PriceReference{
		Name:             "Mine",
		StructureSociety: model.StructureSocietyMineOwned,
		CardinalZone:     model.CardinalZoneSouth,
		Rate:             2800,
	}))

	got, err := store.PriceReferences.Get(ctx, ref.ID)
	require.NoError(t, err)
	assert.Equal(t, -300.0, got.Fiscality.NetVAT)
	assert.Equal(t, 12.5, got.Parafiscality.MarkingFee)

	list, err := store.PriceReferences.List(ctx, repository.PriceReferenceFilter{
		StructureSociety: model.StructureSocietyOther,
		CardinalZone:     model.CardinalZoneSouth,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ref.ID, list[0].ID)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Users.Create(ctx, &model.User{Name: "A", Email: "a@example.com", Role: model.RoleAdmin, PasswordHash: "h"}))
	err := store.Users.Create(ctx, &model.User{Name: "B", Email: "a@example.com", Role: model.RoleCommercial, PasswordHash: "h"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	user, err := store.Users.GetByEmail(ctx, " A@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "h", user.PasswordHash)

	_, err = store.Users.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
