// Command api serves the BizTime HTTP API.
//
//	api               serve HTTP until SIGINT/SIGTERM
//	api -task migrate apply schema migrations and exit
//	api -task seed    migrate, insert the sample companies and invoices, exit
//
// @title       BizTime API
// @version     1.0
// @description CRUD over companies and their invoices.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/biztime-api/internal/admin"
	"github.com/tbourn/biztime-api/internal/config"
	"github.com/tbourn/biztime-api/internal/events"
	httpapi "github.com/tbourn/biztime-api/internal/http"
	"github.com/tbourn/biztime-api/internal/observability"
	"github.com/tbourn/biztime-api/internal/repo"
	"github.com/tbourn/biztime-api/internal/sysutil"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = ""

func main() {
	task := flag.String("task", "", "admin task to run instead of serving: migrate|seed")
	flag.Parse()

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetupLogger(os.Stdout, cfg.LogLevel, cfg.LogPretty, cfg.OTEL.ServiceName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *task); err != nil {
		log.Fatal().Err(err).Msg("api exited")
	}
}

func run(ctx context.Context, cfg config.Config, task string) error {
	ver := sysutil.FirstNonEmpty(version, os.Getenv("APP_VERSION"), "dev")
	log.Info().Str("version", ver).Str("db_driver", cfg.DB.Driver).Msg("starting")

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, ver)
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore(db)

	if task != "" {
		return runTask(ctx, db, task)
	}

	pub, err := newPublisher(cfg.Events)
	if err != nil {
		return err
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Warn().Err(err).Msg("close event publisher")
		}
	}()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, pub, cfg)

	return serve(ctx, newServer(cfg, r), cfg)
}

// openStore connects, instruments and migrates the configured database.
func openStore(cfg config.Config) (*gorm.DB, error) {
	db, err := repo.Open(cfg.DB.Driver, cfg.DB.Path, cfg.DB.URL)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.DB.Driver, err)
	}
	if err := observability.InstrumentDB(db, cfg.OTEL); err != nil {
		closeStore(db)
		return nil, fmt.Errorf("instrument store: %w", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		closeStore(db)
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func closeStore(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// runTask executes a one-off admin task. Migrations have already run.
func runTask(ctx context.Context, db *gorm.DB, task string) error {
	switch task {
	case "migrate":
		log.Info().Msg("migrations applied")
		return nil
	case "seed":
		res, err := admin.Seed(ctx, db)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Info().Int("companies", res.Companies).Int("invoices", res.Invoices).Msg("seed done")
		return nil
	default:
		return fmt.Errorf("unknown task %q", task)
	}
}

// newPublisher dials RabbitMQ when events are enabled, otherwise returns a
// no-op publisher.
func newPublisher(cfg config.EventsConfig) (events.Publisher, error) {
	if !cfg.Enabled {
		return events.Nop{}, nil
	}
	p, err := events.DialAMQP(cfg.URL, cfg.Queue)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}
	log.Info().Str("queue", cfg.Queue).Msg("publishing domain events")
	return p, nil
}

func newServer(cfg config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

// serve runs srv until ctx is cancelled, then drains in-flight requests for
// at most cfg.ShutdownTimeout.
func serve(ctx context.Context, srv *http.Server, cfg config.Config) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
