package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/bizops-dashboard/internal/config"
	"github.com/nurpe/bizops-dashboard/internal/db"
	"github.com/nurpe/bizops-dashboard/internal/logger"
	"github.com/nurpe/bizops-dashboard/internal/repository"
	"github.com/nurpe/bizops-dashboard/internal/repository/filestore"
	"github.com/nurpe/bizops-dashboard/internal/service"
)

type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	store repository.Store
	db    *gorm.DB
}

func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Environment, cfg.LogLevel)
	if cfg.Auth.InsecureSecret {
		log.Warn().Msg("JWT_ACCESS_SECRET is not set, using the development secret")
	}

	a := &app{cfg: cfg, log: log}
	if cfg.Store.Backend == config.BackendFile {
		return a, a.openFileStore()
	}

	database, err := db.New(cfg.DB, log)
	if err != nil {
		// Outside production an unreachable database degrades to the file store.
		if cfg.IsProduction() {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		log.Warn().Err(err).Msg("database unavailable, falling back to file store")
		return a, a.openFileStore()
	}
	a.db = database
	a.store = repository.NewGormStore(database)
	return a, nil
}

func (a *app) openFileStore() error {
	store, err := filestore.NewStore(a.cfg.Store.FilePath)
	if err != nil {
		return fmt.Errorf("open file store: %w", err)
	}
	a.store = store
	a.log.Info().Str("path", a.cfg.Store.FilePath).Msg("using file store")
	return nil
}

func (a *app) migrate() error {
	if a.db == nil {
		return nil
	}
	if err := db.Migrate(a.db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	a.log.Info().Msg("migrations applied")
	return nil
}

// seed applies the default transport rates and the bootstrap administrator.
// Both steps leave existing records untouched.
func (a *app) seed(ctx context.Context) error {
	added, err := service.NewTransportRateService(a.store.TransportRates).Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed transport rates: %w", err)
	}
	a.log.Info().Int("added", added).Msg("transport rates seeded")

	if a.cfg.Seed.AdminEmail == "" {
		return nil
	}
	created, err := service.NewUserService(a.store.Users).EnsureAdmin(ctx, a.cfg.Seed.AdminName, a.cfg.Seed.AdminEmail, a.cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		a.log.Info().Str("email", a.cfg.Seed.AdminEmail).Msg("admin user created")
	}
	return nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
