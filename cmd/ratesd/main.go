package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"privat-rates/internal"
	rateshttp "privat-rates/internal/api/http/rates"
	"privat-rates/internal/logging"
	"privat-rates/internal/postgresql"
	"privat-rates/internal/privatbank"
	"privat-rates/internal/repository/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("ratesd stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// env
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)
	logger.Info("config loaded", "config", cfg.String())

	// DB
	dbCtx, cancelDB := context.WithTimeout(ctx, 5*time.Second)
	defer cancelDB()

	pool, err := pgxpool.New(dbCtx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer pool.Close()

	if err := migrations.New(pool).Setup(dbCtx); err != nil {
		return fmt.Errorf("ensure tables: %w", err)
	}
	storage := postgresql.NewArchiveStorage(pool)

	// client
	client := privatbank.New(cfg.HTTPTimeout)
	defer client.Close()

	loc, err := time.LoadLocation(cfg.Location)
	if err != nil {
		return fmt.Errorf("load location %s: %w", cfg.Location, err)
	}
	now := func() time.Time { return time.Now().In(loc) }

	archiver, err := internal.NewArchiver(internal.NewAggregator(client, logger), storage, cfg.ArchiveDays, now, logger)
	if err != nil {
		return fmt.Errorf("new archiver: %w", err)
	}

	// instant archive
	archive(ctx, archiver, logger)

	// cron
	scheduler := cron.New(
		cron.WithLocation(loc),
		cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)),
	)

	mux := http.NewServeMux()
	rateshttp.New(storage, logger).Register(mux)

	g, gctx := errgroup.WithContext(ctx)

	_, err = scheduler.AddFunc(cfg.CronSpec, func() {
		archive(gctx, archiver, logger)
	})
	if err != nil {
		return fmt.Errorf("add cron func: %w", err)
	}

	g.Go(func() error {
		return runCron(gctx, scheduler)
	})

	g.Go(func() error {
		return serveHTTP(gctx, ":"+cfg.HTTPPort, mux, logger)
	})

	logger.Info("running, stop with Ctrl+C / SIGTERM")
	return g.Wait()
}

func archive(ctx context.Context, archiver *internal.Archiver, logger *slog.Logger) {
	if _, err := archiver.Archive(ctx); err != nil {
		logger.ErrorContext(ctx, "archive run incomplete", "err", err)
	}
}

func runCron(ctx context.Context, c *cron.Cron) error {
	c.Start()
	defer func() {
		stopCtx := c.Stop()
		<-stopCtx.Done()
	}()

	<-ctx.Done()
	return nil
}

func serveHTTP(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	logger.Info("http listening", "addr", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
