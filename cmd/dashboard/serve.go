package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nurpe/bizops-dashboard/internal/auth"
	"github.com/nurpe/bizops-dashboard/internal/excel"
	httphandler "github.com/nurpe/bizops-dashboard/internal/http"
	"github.com/nurpe/bizops-dashboard/internal/http/middleware"
	"github.com/nurpe/bizops-dashboard/internal/pdf"
	"github.com/nurpe/bizops-dashboard/internal/service"
)

var skipSeed bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "do not apply default data on startup")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.migrate(); err != nil {
		return err
	}
	if !skipSeed {
		if err := a.seed(ctx); err != nil {
			return err
		}
	}

	clients := service.NewClientService(a.store.Clients)
	prospects := service.NewProspectService(a.store.Prospects)
	prices := service.NewPriceReferenceService(a.store.PriceReferences)
	services := httphandler.Services{
		Auth:            service.NewAuthService(a.store.Users, auth.NewIssuer(a.cfg.Auth.AccessSecret, a.cfg.Auth.AccessTTL)),
		Clients:         clients,
		Prospects:       prospects,
		TransportRates:  service.NewTransportRateService(a.store.TransportRates),
		PriceReferences: prices,
		Users:           service.NewUserService(a.store.Users),
		Exports:         service.NewExportService(clients, prospects, prices, excel.NewGenerator(), pdf.NewGenerator()),
	}

	handler := httphandler.NewHandler(services, a.log)
	authMiddleware := middleware.Auth(auth.NewParser(a.cfg.Auth.AccessSecret))
	router := httphandler.NewRouter(handler, authMiddleware, a.cfg, a.log)

	addr := fmt.Sprintf("%s:%d", a.cfg.HTTP.Host, a.cfg.HTTP.Port)
	server := &http.Server{Addr: addr, Handler: router}

	backend := "database"
	if a.db == nil {
		backend = "file"
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", addr).Str("store", backend).Msg("starting dashboard api")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
