//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nurpe/bizops-dashboard/internal/config"
	"github.com/nurpe/bizops-dashboard/internal/db"
	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/repository"
)

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=dashboard",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=dashboard",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })
	_ = resource.Expire(120)

	dsn := fmt.Sprintf("host=localhost port=%s user=dashboard password=secret dbname=dashboard sslmode=disable",
		resource.GetPort("5432/tcp"))

	var database *gorm.DB
	pool.MaxWait = 60 * time.Second
	require.NoError(t, pool.Retry(func() error {
		var err error
		database, err = db.New(config.DBConfig{Driver: config.DriverPostgres, DSN: dsn}, zerolog.Nop())
		return err
	}))
	require.NoError(t, db.Migrate(database))
	return database
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	store := repository.NewGormStore(startPostgres(t))

	require.NoError(t, store.Users.Create(ctx, &model.User{Name: "A", Email: "a@example.com", Role: model.RoleAdmin, PasswordHash: "h"}))
	err := store.Users.Create(ctx, &model.User{Name: "B", Email: "a@example.com", Role: model.RoleAdmin, PasswordHash: "h"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	first := &model.Client{Name: "First", Status: model.ClientStatusActive}
	require.NoError(t, store.Clients.Create(ctx, first))
	time.Sleep(10 * time.Millisecond)
	second := &model.Client{Name: "Second", Status: model.ClientStatusActive}
	require.NoError(t, store.Clients.Create(ctx, second))

	list, err := store.Clients.List(ctx, repository.ClientFilter{Search: "sec"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	list, err = store.Clients.List(ctx, repository.ClientFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	created, err := store.TransportRates.Upsert(ctx, &model.TransportRate{Destination: "Goma", RateUSDPerCBM: 190})
	require.NoError(t, err)
	assert.True(t, created)
}
