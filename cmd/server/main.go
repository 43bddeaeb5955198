package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"cocina/internal/config"
	"cocina/internal/db"
	"cocina/internal/db/mock"
	applog "cocina/internal/log"
	"cocina/internal/server"
)

func main() {
	if err := run(); err != nil {
		applog.Error(context.Background(), "server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}

	ctx := context.Background()

	var database *gorm.DB
	if cfg.Database.UseMock {
		applog.Info(ctx, "running against the seeded in-memory database")
		database, err = mock.New(ctx)
	} else {
		database, err = db.Configure(cfg.Database)
	}
	if err != nil {
		return err
	}

	srv := server.New(cfg, database)

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
		applog.Info(ctx, "shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
