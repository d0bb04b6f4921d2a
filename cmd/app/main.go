package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/verdantworks/idlefarm/internal/bootstrap"
	"github.com/verdantworks/idlefarm/internal/config"
	"github.com/verdantworks/idlefarm/internal/event"
	"github.com/verdantworks/idlefarm/internal/farm"
	"github.com/verdantworks/idlefarm/internal/rng"
	"github.com/verdantworks/idlefarm/internal/scheduler"
	"github.com/verdantworks/idlefarm/internal/server"
	"github.com/verdantworks/idlefarm/internal/snapshot"
	"github.com/verdantworks/idlefarm/internal/sse"
	"github.com/verdantworks/idlefarm/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	bus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		return err
	}

	hub := sse.NewHub()
	hub.Start()
	bootstrap.RegisterEventHandlers(bus, hub)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), bootstrap.DirPermission); err != nil {
		return err
	}
	store, err := snapshot.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return err
	}

	var rnd rng.Source
	if cfg.RNGSeed != 0 {
		rnd = rng.New(cfg.RNGSeed)
	} else {
		rnd = rng.NewTimeSeeded()
	}

	ctx := context.Background()
	farmSvc := farm.NewService(ctx, store, bus, rnd, time.Now)

	pool := worker.NewPool(1, 16)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(time.Duration(cfg.TickIntervalMS)*time.Millisecond, worker.NewTickJob(farmSvc, time.Now))

	srv := server.NewServer(cfg.Port, farmSvc, hub)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:      srv,
		Scheduler:   sched,
		WorkerPool:  pool,
		Hub:         hub,
		FarmService: farmSvc,
		Store:       store,
	})

	return nil
}
