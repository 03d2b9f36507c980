package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"restaurant-orders/internal/domain"
)

// FileStore keeps each collection in its own JSON file under dir
// (accounts.json, menu.json, orders.json). A file that does not exist yet is
// created with its empty-collection default on first access.
//
// Every mutation goes through an Update method, which holds that collection's
// lock across the whole load-modify-save cycle. Two concurrent sessions can
// therefore never interleave their read-modify-write cycles or compute the
// same derived order id.
type FileStore struct {
	dir string
	lg  *slog.Logger

	accountsMu sync.Mutex
	menuMu     sync.Mutex
	ordersMu   sync.Mutex
}

func NewFileStore(dir string, lg *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &domain.StorageError{Collection: "data", Op: "load", Err: err}
	}
	return &FileStore{dir: dir, lg: lg}, nil
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func readFileDoc[T any](s *FileStore, collection string, def T, keys ...string) (T, error) {
	raw, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		if err := writeFileDoc(s, collection, def); err != nil {
			return def, err
		}
		s.lg.Info("collection_initialized", "collection", collection)
		return def, nil
	}
	if err != nil {
		return def, &domain.StorageError{Collection: collection, Op: "load", Err: err}
	}
	return decodeDoc[T](collection, raw, keys...)
}

// writeFileDoc replaces the whole document: write to a temp file, then rename
// over the old one so a crash mid-save never leaves a torn document behind.
func writeFileDoc[T any](s *FileStore, collection string, doc T) error {
	body, err := encodeDoc(collection, doc)
	if err != nil {
		return err
	}
	path := s.path(collection)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(body, '\n'), 0o644); err != nil {
		return &domain.StorageError{Collection: collection, Op: "save", Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &domain.StorageError{Collection: collection, Op: "save", Err: err}
	}
	return nil
}

func (s *FileStore) LoadAccounts(_ context.Context) (domain.AccountsDoc, error) {
	s.accountsMu.Lock()
	defer s.accountsMu.Unlock()
	return readFileDoc(s, CollectionAccounts, emptyAccounts(), "users", "admins")
}

func (s *FileStore) SaveAccounts(_ context.Context, doc domain.AccountsDoc) error {
	s.accountsMu.Lock()
	defer s.accountsMu.Unlock()
	return writeFileDoc(s, CollectionAccounts, doc)
}

func (s *FileStore) UpdateAccounts(_ context.Context, fn func(*domain.AccountsDoc) error) error {
	s.accountsMu.Lock()
	defer s.accountsMu.Unlock()
	doc, err := readFileDoc(s, CollectionAccounts, emptyAccounts(), "users", "admins")
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return writeFileDoc(s, CollectionAccounts, doc)
}

func (s *FileStore) LoadMenu(_ context.Context) (domain.MenuDoc, error) {
	s.menuMu.Lock()
	defer s.menuMu.Unlock()
	return readFileDoc(s, CollectionMenu, emptyMenu(), "items")
}

func (s *FileStore) SaveMenu(_ context.Context, doc domain.MenuDoc) error {
	s.menuMu.Lock()
	defer s.menuMu.Unlock()
	return writeFileDoc(s, CollectionMenu, doc)
}

func (s *FileStore) UpdateMenu(_ context.Context, fn func(*domain.MenuDoc) error) error {
	s.menuMu.Lock()
	defer s.menuMu.Unlock()
	doc, err := readFileDoc(s, CollectionMenu, emptyMenu(), "items")
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return writeFileDoc(s, CollectionMenu, doc)
}

func (s *FileStore) LoadOrders(_ context.Context) (domain.OrdersDoc, error) {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()
	return readFileDoc(s, CollectionOrders, emptyOrders(), "orders")
}

func (s *FileStore) SaveOrders(_ context.Context, doc domain.OrdersDoc) error {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()
	return writeFileDoc(s, CollectionOrders, doc)
}

func (s *FileStore) UpdateOrders(_ context.Context, fn func(*domain.OrdersDoc) error) error {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()
	doc, err := readFileDoc(s, CollectionOrders, emptyOrders(), "orders")
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return writeFileDoc(s, CollectionOrders, doc)
}
