package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/festgames/scoreboard/internal/config"
	"github.com/festgames/scoreboard/internal/database"
	"github.com/festgames/scoreboard/internal/migrations"
	"github.com/festgames/scoreboard/internal/scoreboard"
	"github.com/festgames/scoreboard/internal/seed"
	"github.com/festgames/scoreboard/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// Seed source: sqlite when DB_PATH is set, static JSON files otherwise.
	var (
		source scoreboard.Loader
		checks = map[string]server.Checker{}
	)
	if cfg.DBPath != "" {
		db, err := database.Open(ctx, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("connecting to sqlite: %w", err)
		}
		defer db.Close()

		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}

		src := seed.NewDB(db)
		source = src
		checks["sqlite"] = src
		logger.Info("seeding from sqlite", "path", cfg.DBPath)
	} else {
		src := seed.NewFiles(cfg.DataDir)
		source = src
		checks["seed"] = src
		logger.Info("seeding from data files", "dir", cfg.DataDir)
	}

	store, err := scoreboard.NewStore(ctx, source)
	if err != nil {
		return err
	}
	session := scoreboard.NewSession()
	metrics := server.NewMetrics()

	srv := server.New(cfg.HTTPAddr, logger, store, session, metrics, checks, cfg.SPADir)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
