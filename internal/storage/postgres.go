package storage

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"restaurant-orders/internal/domain"
)

// PostgresStore keeps each collection as a single jsonb row. The whole-document
// contract is identical to the file store's; the difference is that Update runs
// inside a transaction holding a row lock, so concurrent processes serialize on
// the database instead of an in-process mutex.
type PostgresStore struct {
	pool *pgxpool.Pool
	lg   *slog.Logger
}

const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
    collection text PRIMARY KEY,
    body       jsonb NOT NULL,
    updated_at timestamptz NOT NULL DEFAULT now()
)`

func NewPostgresStore(ctx context.Context, dsn string, lg *slog.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, &domain.StorageError{Collection: "documents", Op: "load", Err: err}
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &domain.StorageError{Collection: "documents", Op: "load", Err: err}
	}
	s := &PostgresStore{pool: pool, lg: lg}
	if err := s.init(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// init creates the documents table and seeds each collection with its
// empty-collection default, leaving existing rows untouched.
func (s *PostgresStore) init(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, documentsSchema); err != nil {
		return &domain.StorageError{Collection: "documents", Op: "save", Err: err}
	}
	if err := seedPG(ctx, s, CollectionAccounts, emptyAccounts()); err != nil {
		return err
	}
	if err := seedPG(ctx, s, CollectionMenu, emptyMenu()); err != nil {
		return err
	}
	return seedPG(ctx, s, CollectionOrders, emptyOrders())
}

func seedPG[T any](ctx context.Context, s *PostgresStore, collection string, def T) error {
	body, err := encodeDoc(collection, def)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO documents (collection, body) VALUES ($1, $2)
		ON CONFLICT (collection) DO NOTHING
	`, collection, body)
	if err != nil {
		return &domain.StorageError{Collection: collection, Op: "save", Err: err}
	}
	if tag.RowsAffected() > 0 {
		s.lg.Info("collection_initialized", "collection", collection)
	}
	return nil
}

func readPGDoc[T any](ctx context.Context, s *PostgresStore, collection string, def T, keys ...string) (T, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT body FROM documents WHERE collection = $1`, collection).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		if err := seedPG(ctx, s, collection, def); err != nil {
			return def, err
		}
		return def, nil
	}
	if err != nil {
		return def, &domain.StorageError{Collection: collection, Op: "load", Err: err}
	}
	return decodeDoc[T](collection, raw, keys...)
}

func writePGDoc[T any](ctx context.Context, s *PostgresStore, collection string, doc T) error {
	body, err := encodeDoc(collection, doc)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO documents (collection, body) VALUES ($1, $2)
		ON CONFLICT (collection) DO UPDATE SET body = EXCLUDED.body, updated_at = now()
	`, collection, body)
	if err != nil {
		return &domain.StorageError{Collection: collection, Op: "save", Err: err}
	}
	return nil
}

// updatePGDoc runs the load-modify-save cycle inside one transaction with the
// collection row locked, so two writers can never base their saves on the same
// snapshot.
func updatePGDoc[T any](ctx context.Context, s *PostgresStore, collection string, def T, fn func(*T) error, keys ...string) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return &domain.StorageError{Collection: collection, Op: "save", Err: err}
	}
	defer tx.Rollback(ctx)

	doc := def
	var raw []byte
	err = tx.QueryRow(ctx,
		`SELECT body FROM documents WHERE collection = $1 FOR UPDATE`, collection).Scan(&raw)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// first access inside the transaction, start from the default
	case err != nil:
		return &domain.StorageError{Collection: collection, Op: "load", Err: err}
	default:
		doc, err = decodeDoc[T](collection, raw, keys...)
		if err != nil {
			return err
		}
	}

	if err := fn(&doc); err != nil {
		return err
	}

	body, err := encodeDoc(collection, doc)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO documents (collection, body) VALUES ($1, $2)
		ON CONFLICT (collection) DO UPDATE SET body = EXCLUDED.body, updated_at = now()
	`, collection, body); err != nil {
		return &domain.StorageError{Collection: collection, Op: "save", Err: err}
	}
	if err := tx.Commit(ctx); err != nil {
		return &domain.StorageError{Collection: collection, Op: "save", Err: err}
	}
	return nil
}

func (s *PostgresStore) LoadAccounts(ctx context.Context) (domain.AccountsDoc, error) {
	return readPGDoc(ctx, s, CollectionAccounts, emptyAccounts(), "users", "admins")
}

func (s *PostgresStore) SaveAccounts(ctx context.Context, doc domain.AccountsDoc) error {
	return writePGDoc(ctx, s, CollectionAccounts, doc)
}

func (s *PostgresStore) UpdateAccounts(ctx context.Context, fn func(*domain.AccountsDoc) error) error {
	return updatePGDoc(ctx, s, CollectionAccounts, emptyAccounts(), fn, "users", "admins")
}

func (s *PostgresStore) LoadMenu(ctx context.Context) (domain.MenuDoc, error) {
	return readPGDoc(ctx, s, CollectionMenu, emptyMenu(), "items")
}

func (s *PostgresStore) SaveMenu(ctx context.Context, doc domain.MenuDoc) error {
	return writePGDoc(ctx, s, CollectionMenu, doc)
}

func (s *PostgresStore) UpdateMenu(ctx context.Context, fn func(*domain.MenuDoc) error) error {
	return updatePGDoc(ctx, s, CollectionMenu, emptyMenu(), fn, "items")
}

func (s *PostgresStore) LoadOrders(ctx context.Context) (domain.OrdersDoc, error) {
	return readPGDoc(ctx, s, CollectionOrders, emptyOrders(), "orders")
}

func (s *PostgresStore) SaveOrders(ctx context.Context, doc domain.OrdersDoc) error {
	return writePGDoc(ctx, s, CollectionOrders, doc)
}

func (s *PostgresStore) UpdateOrders(ctx context.Context, fn func(*domain.OrdersDoc) error) error {
	return updatePGDoc(ctx, s, CollectionOrders, emptyOrders(), fn, "orders")
}
