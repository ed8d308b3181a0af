package main

import (
	"colis-service/internal/adapters/metrics"
	"colis-service/internal/adapters/repositories"
	"colis-service/internal/api"
	"colis-service/internal/bootstrap"
	"colis-service/internal/config"
	"colis-service/internal/platform/obs"
	"colis-service/internal/services"
	"colis-service/internal/store"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

// main is the application composition root.
// It wires storage, loaders and stores behind ports and starts the HTTP server.
func main() {
	envLoaded := config.LoadDotEnv()
	cfg := config.FromEnv()

	logger := obs.NewLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)
	if !envLoaded {
		logger.Info("no .env file found (using environment variables)")
	}

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("server stopped", obs.Err("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	conn, dialect, err := bootstrap.OpenDB(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	if cfg.SeedPath != "" {
		if err := repositories.SeedFromFile(conn, dialect, cfg.SeedPath); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("seed applied", slog.String("path", cfg.SeedPath))
	}

	storage, closeStorage, err := bootstrap.SettingsStorage(ctx, cfg, conn, dialect)
	if err != nil {
		return err
	}
	defer closeStorage()

	parcelLoader, passengerLoader, err := bootstrap.Loaders(cfg, conn)
	if err != nil {
		return err
	}

	parcels := store.NewParcelStore(store.WithLogger(logger))
	passengers := store.NewPassengerStore(store.WithLogger(logger))
	settings := store.NewSettingsStore(ctx, storage, store.WithLogger(logger))

	// Both collections load concurrently; a failed load leaves its store
	// empty and never aborts startup.
	var g errgroup.Group
	g.Go(func() error {
		n := store.Refresh(ctx, parcels.RecordStore, parcelLoader)
		logger.Info("parcels loaded", slog.Int("count", n))
		return nil
	})
	g.Go(func() error {
		n := store.Refresh(ctx, passengers.RecordStore, passengerLoader)
		logger.Info("passengers loaded", slog.Int("count", n))
		return nil
	})
	_ = g.Wait()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)
	m.ObserveParcels(parcels)
	m.ObservePassengers(passengers)

	router := api.NewRouter(api.Deps{
		Parcels:    parcels,
		Passengers: passengers,
		Settings:   settings,
		Reports:    services.NewReports(parcels, passengers),
		Gatherer:   reg,
	})

	logger.Info("server listening",
		slog.String("addr", ":"+cfg.Port),
		slog.String("identifier_type", string(settings.PassengerIdentifierType())))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv.ListenAndServe()
}
