// Package storage persists the three collections (accounts, menu, orders) as
// whole serialized documents. There is no partial update: every mutation is a
// full load, modify in memory, save cycle. The Update helpers run that cycle
// under a per-collection lock and write back only when the mutator succeeds,
// so a failed operation persists nothing.
package storage

import (
	"context"

	"restaurant-orders/internal/domain"
)

// Collection names as they appear in the backing medium.
const (
	CollectionAccounts = "accounts"
	CollectionMenu     = "menu"
	CollectionOrders   = "orders"
)

type Store interface {
	LoadAccounts(ctx context.Context) (domain.AccountsDoc, error)
	SaveAccounts(ctx context.Context, doc domain.AccountsDoc) error
	UpdateAccounts(ctx context.Context, fn func(*domain.AccountsDoc) error) error

	LoadMenu(ctx context.Context) (domain.MenuDoc, error)
	SaveMenu(ctx context.Context, doc domain.MenuDoc) error
	UpdateMenu(ctx context.Context, fn func(*domain.MenuDoc) error) error

	LoadOrders(ctx context.Context) (domain.OrdersDoc, error)
	SaveOrders(ctx context.Context, doc domain.OrdersDoc) error
	UpdateOrders(ctx context.Context, fn func(*domain.OrdersDoc) error) error

	Close() error
}
