package storage

import (
	"encoding/json"
	"fmt"

	"restaurant-orders/internal/domain"
)

// Empty-collection defaults written on first access.
func emptyAccounts() domain.AccountsDoc {
	return domain.AccountsDoc{Users: []domain.UserAccount{}, Admins: []domain.AdminAccount{}}
}

func emptyMenu() domain.MenuDoc { return domain.MenuDoc{Items: []domain.MenuItem{}} }

func emptyOrders() domain.OrdersDoc { return domain.OrdersDoc{Orders: []domain.Order{}} }

// decodeDoc parses a whole collection document and verifies it is a JSON
// object carrying the expected top-level fields. Anything else is a
// StorageError: the medium is readable but the document is not trustworthy.
func decodeDoc[T any](collection string, raw []byte, keys ...string) (T, error) {
	var doc T

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return doc, &domain.StorageError{Collection: collection, Op: "load", Err: err}
	}
	for _, k := range keys {
		if _, ok := top[k]; !ok {
			return doc, &domain.StorageError{
				Collection: collection, Op: "load",
				Err: fmt.Errorf("document is missing the %q field", k),
			}
		}
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, &domain.StorageError{Collection: collection, Op: "load", Err: err}
	}
	return doc, nil
}

// encodeDoc serializes a collection document the way the data files have
// always been written (4-space indent).
func encodeDoc[T any](collection string, doc T) ([]byte, error) {
	body, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, &domain.StorageError{Collection: collection, Op: "save", Err: err}
	}
	return body, nil
}
