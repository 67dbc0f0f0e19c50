package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/donaldgifford/dealer-appraisal/internal/api/handlers"
	"github.com/donaldgifford/dealer-appraisal/internal/cache"
	"github.com/donaldgifford/dealer-appraisal/internal/config"
	"github.com/donaldgifford/dealer-appraisal/internal/engine"
	"github.com/donaldgifford/dealer-appraisal/internal/store"
	"github.com/donaldgifford/dealer-appraisal/internal/tracing"
	"github.com/donaldgifford/dealer-appraisal/pkg/appraise"
	"github.com/donaldgifford/dealer-appraisal/pkg/logger"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and inventory refresher",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, &cfg.Tracing, logger.Service, Version)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("flushing traces", "error", err)
		}
	}()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if autoMigrate {
		applied, err := st.ApplyMigrations(ctx)
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied", "applied", applied)
	}

	directory, names, closeCache := dealerDirectory(ctx, &cfg.Cache, st, log)
	defer closeCache()

	source, stopInventory, err := comparableSource(ctx, &cfg.Inventory, st, log)
	if err != nil {
		return err
	}
	defer stopInventory()

	eng := engine.NewEngine(source, directory,
		engine.WithLogger(log),
		engine.WithAppraiser(appraise.New(
			appraise.WithRates(cfg.Appraisal.Rates),
			appraise.WithComparableLimit(cfg.Appraisal.ComparableLimit),
			appraise.WithTopComparables(cfg.Appraisal.TopComparables),
		)),
		engine.WithPolicy(cfg.Appraisal.Policy),
		engine.WithTimeout(cfg.Appraisal.Timeout),
	)

	e, _ := newRouter(&routerDeps{
		store:      st,
		appraiser:  eng,
		names:      names,
		log:        log,
		rateLimit:  cfg.RateLimit,
		tracer:     otel.GetTracerProvider(),
		propagator: otel.GetTextMapPropagator(),
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"version", Version,
		"inventory_source", cfg.Inventory.Source,
		"cache", cfg.Cache.Enabled,
		"rate_limit", cfg.RateLimit.Enabled,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// dealerDirectory returns the dealership name lookup for the engine, fronted
// by Redis when the cache is enabled and reachable. The invalidator is nil
// without a cache.
func dealerDirectory(
	ctx context.Context,
	cfg *config.CacheConfig,
	st store.Store,
	log *slog.Logger,
) (engine.DealerDirectory, handlers.NameInvalidator, func()) {
	if !cfg.Enabled {
		return st, nil, func() {}
	}

	client, err := cache.NewClient(ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		log.Warn("dealer name cache disabled", "error", err)
		return st, nil, func() {}
	}

	names := cache.NewDealerNames(client, st, cache.WithTTL(cfg.TTL), cache.WithLogger(log))
	return names, names, func() { _ = client.Close() }
}

// comparableSource picks where the engine reads inventory from. The snapshot
// source starts a scheduler that keeps it fresh; the returned stop func waits
// for a running refresh to finish.
func comparableSource(
	ctx context.Context,
	cfg *config.InventoryConfig,
	st store.Store,
	log *slog.Logger,
) (engine.ComparableSource, func(), error) {
	if cfg.Source == config.InventoryStore {
		return engine.NewStoreSource(st), func() {}, nil
	}

	snap := engine.NewSnapshot(st, log)
	if err := snap.Refresh(ctx); err != nil {
		log.Warn("initial inventory load failed, will retry on first appraisal", "error", err)
	}

	sched, err := engine.NewScheduler(snap, cfg.RefreshInterval, log)
	if err != nil {
		return nil, nil, fmt.Errorf("creating inventory scheduler: %w", err)
	}
	sched.Start()

	return snap, func() { <-sched.Stop().Done() }, nil
}
