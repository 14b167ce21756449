package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/adapter"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/api/server"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/config"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/logger"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/providers/coinmarketcap"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/resolver"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/store"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/syncer"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting API server")

	// Connect to database, retrying while it comes up
	db, err := connectDatabase(ctx, cfg.Database)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
		cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)

	// Provider client
	httpClient := adapter.NewHTTPClient(cfg.Provider.HTTPTimeout)
	limiter := rate.NewLimiter(rate.Limit(float64(cfg.Provider.RequestsPerMinute)/60.0), 1)
	cmcClient := coinmarketcap.NewClient(
		httpClient,
		limiter,
		cfg.Provider.BaseURL,
		cfg.Provider.APIKey,
		adapter.NewJSON(),
		cfg.Provider.BatchSize,
		cfg.Provider.MaxConcurrency,
	)

	clock := adapter.NewClock()

	// On-demand resolver backing the REST API
	service := resolver.New(&resolver.Config{
		QuoteWindow:     cfg.Sync.QuoteWindow,
		HistoricalRange: cfg.Sync.HistoricalRange,
		SearchLimit:     cfg.Sync.SearchLimit,
	}, dataStore, cmcClient, clock)

	// Background sync scheduler keeps the catalog fresh while the API serves
	scheduler := syncer.NewScheduler(
		&syncer.SchedulerConfig{
			Window:     cfg.Sync.CatalogWindow,
			RetryDelay: cfg.Sync.RetryDelay,
		},
		dataStore,
		clock,
		syncer.NewCatalogSyncJob(&syncer.CatalogSyncJobConfig{
			CatalogLimit: cfg.Provider.CatalogLimit,
			Window:       cfg.Sync.CatalogWindow,
		}, cmcClient, dataStore),
		syncer.NewMetadataSyncJob(&syncer.MetadataSyncJobConfig{
			Window: cfg.Sync.MetadataWindow,
		}, cmcClient, dataStore),
	)

	errChan := make(chan error, 1)
	go func() {
		if err := scheduler.Start(ctx); err != nil {
			errChan <- fmt.Errorf("scheduler error: %w", err)
		}
	}()

	// HTTP server
	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, service)

	go func() {
		if err := srv.Start(); err != nil {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "API server stopped")
}

// connectDatabase opens the database connection, retrying with exponential
// backoff so the binary survives a database that is still starting up.
func connectDatabase(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	err := backoff.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			logger.WarnCtx(ctx, "Database not ready, retrying", zap.Error(err))
			return err
		}
		return nil
	}, policy)
	if err != nil {
		return nil, err
	}

	return db, nil
}
