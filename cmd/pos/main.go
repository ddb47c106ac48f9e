package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"resto-pos/internal/catalog"
	"resto-pos/internal/config"
	"resto-pos/internal/ledger"
	"resto-pos/internal/model"
	"resto-pos/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting resto-pos")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the durable store
	durable, err := store.OpenSQLite(cfg.Store.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer durable.Close()

	// Initialize core services
	menu := catalog.New(durable, logger)
	orders := ledger.New(durable, logger)

	if err := menu.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}

	// Refresh the staff order view on the configured interval
	watcher := ledger.NewWatcher(orders, cfg.Store.PollInterval, logger)
	go watcher.Run(ctx, func(all []model.Order) {
		pending := 0
		for _, order := range all {
			if order.Status != model.StatusCompleted {
				pending++
			}
		}
		logger.Info().
			Int("orders", len(all)).
			Int("open", pending).
			Msg("order view refreshed")
	})

	// Block until we receive a shutdown signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	sig := <-shutdown
	logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	return nil
}
