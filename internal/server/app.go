// Package server initializes and runs the admissions portal server. It
// wires the database and migrations, object storage, the change feed,
// the domain services, and the HTTP API, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mpcportal/admissions/internal/logging"
	"github.com/mpcportal/admissions/internal/server/config"
	"github.com/mpcportal/admissions/internal/server/feed"
	"github.com/mpcportal/admissions/internal/server/httpapi"
	"github.com/mpcportal/admissions/internal/server/metrics"
	"github.com/mpcportal/admissions/internal/server/objstore"
	"github.com/mpcportal/admissions/internal/server/repositories/repomanager"
	"github.com/mpcportal/admissions/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *http.Server
	closers    []io.Closer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := repomanager.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	manager := repomanager.NewPostgresManager()
	if err := manager.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	repo := manager.Applications(db)

	store, err := objstore.NewS3Store(ctx, objstore.S3Config{
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("object store init error: %w", err)
	}

	health := map[string]httpapi.HealthCheck{
		"postgres": db.PingContext,
	}

	var broker feed.Broker
	var closers []io.Closer
	if cfg.RedisURL != "" {
		rb, err := feed.NewRedisBroker(ctx, cfg.RedisURL, cfg.FeedChannel)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		health["redis"] = rb.Health
		broker = rb
		closers = append(closers, rb)
	} else {
		// Single-instance fallback: changes made through another server
		// process will not be seen.
		logger.Warn(ctx, "no redis URL configured, using in-process change feed")
		mb := feed.NewMemoryBroker()
		broker = mb
		closers = append(closers, mb)
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	gen := services.NewRegNumberGenerator(cfg.RegistrationPrefix)
	handler := httpapi.NewHandler(
		services.NewSubmissionService(repo, store, broker, gen, logger, m),
		services.NewLookupService(repo, m),
		services.NewAdminService(repo, broker, logger, m),
		broker,
		logger,
		[]byte(cfg.SecretKey),
		cfg.TokenValidity,
		cfg.AdminPassphraseHash,
		health,
	)

	return &App{
		config: cfg,
		logger: logger,
		db:     db,
		httpServer: &http.Server{
			Addr:    cfg.Addr,
			Handler: httpapi.NewRouter(handler, reg),
		},
		closers: closers,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the HTTP server and blocks until the context is cancelled or
// an OS signal arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	app.logger.Info(ctx, "starting server", "addr", app.config.Addr)

	serveErr := make(chan error, 1)
	go func() {
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(ctx, "http shutdown failed", "error", err)
	}

	for _, c := range app.closers {
		if err := c.Close(); err != nil {
			app.logger.Error(ctx, "closing dependency failed", "error", err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing database failed", "error", err)
	}
	return nil
}
