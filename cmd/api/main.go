package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"gerry-coffee/internal/config"
	"gerry-coffee/internal/db"
	"gerry-coffee/internal/httpserver"
	"gerry-coffee/internal/state"
	"gerry-coffee/internal/store"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var (
		pool    *pgxpool.Pool
		backing store.Store
	)
	if cfg.DBConnString == "" {
		logger.Printf("DB_DSN not set, running with in-memory store")
		backing = store.NewMemory()
	} else {
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		backing = store.NewPostgres(pool, logger)
	}

	app := state.New(backing, logger, cfg)
	if err := app.Load(ctx); err != nil {
		logger.Fatalf("load state: %v", err)
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, pool, app)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
