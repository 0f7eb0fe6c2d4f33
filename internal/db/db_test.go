package db

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/bizops-dashboard/internal/config"
)

func TestNewSQLiteAndMigrate(t *testing.T) {
	database, err := New(config.DBConfig{
		Driver:          config.DriverSQLite,
		DSN:             "file:" + t.Name() + "?mode=memory&cache=shared",
		MaxOpenConns:    1,
		ConnMaxLifetime: "1m",
	}, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, Migrate(database))
	// Running twice must be harmless.
	require.NoError(t, Migrate(database))

	for _, table := range []string{"users", "clients", "prospects", "transport_rates", "price_references"} {
		assert.True(t, database.Migrator().HasTable(table), table)
	}
	assert.True(t, database.Migrator().HasColumn("price_references", "fiscality_total1"))
	assert.True(t, database.Migrator().HasColumn("price_references", "parafiscality_marking_fee"))
	assert.True(t, database.Migrator().HasColumn("price_references", "commercial_price_cdf"))
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(config.DBConfig{Driver: "mysql", DSN: "x"}, zerolog.Nop())
	require.ErrorContains(t, err, "unsupported driver")
}
