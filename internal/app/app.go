// Package app wires the document store, the core services and the HTTP
// surface into one runnable unit.
package app

import (
	"context"
	"fmt"

	"restaurant-orders/internal/catalog"
	"restaurant-orders/internal/common/httpx"
	"restaurant-orders/internal/common/logger"
	"restaurant-orders/internal/config"
	"restaurant-orders/internal/directory"
	"restaurant-orders/internal/httpapi"
	"restaurant-orders/internal/ledger"
	"restaurant-orders/internal/session"
	"restaurant-orders/internal/storage"
)

// Run blocks serving the API until ctx is cancelled. A store that cannot be
// opened is fatal: no component can operate without its backing collections.
func Run(ctx context.Context, cfg *config.Config) error {
	lg := logger.New("restaurant-orders")

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	dir := directory.New(store, cfg.Admin.RegistrationCode, lg)
	cat := catalog.New(store, lg)
	led := ledger.New(store, lg)
	sessions := session.NewRegistry()

	api := httpapi.New(dir, cat, led, sessions, lg)
	srv := httpx.New(cfg.Server.Addr, api.Router())

	lg.Info("service_started", "addr", cfg.Server.Addr, "storage_driver", cfg.Storage.Driver)
	return srv.Run(ctx)
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	lg := logger.New("storage")
	switch cfg.Storage.Driver {
	case "postgres":
		return storage.NewPostgresStore(ctx, cfg.Storage.Postgres.DSN(), lg)
	default:
		return storage.NewFileStore(cfg.Storage.DataDir, lg)
	}
}
