// Package catalog manages the menu. Items carry a stable id assigned at
// creation, but callers address them by their dense 1-based position in the
// stored sequence, recomputed on every listing.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"restaurant-orders/internal/domain"
	"restaurant-orders/internal/storage"
)

type ServiceInterface interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	At(ctx context.Context, position int) (domain.MenuItem, error)
	Add(ctx context.Context, name string, price float64, description string) error
	Update(ctx context.Context, position int, name string, price float64, description string) error
	Remove(ctx context.Context, position int) error
}

type Service struct {
	store storage.Store
	lg    *slog.Logger
}

func New(store storage.Store, lg *slog.Logger) *Service {
	return &Service{store: store, lg: lg}
}

// List returns the catalog in storage order with positions derived from the
// current sequence.
func (s *Service) List(ctx context.Context) ([]domain.MenuItem, error) {
	doc, err := s.store.LoadMenu(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]domain.MenuItem, len(doc.Items))
	for i, it := range doc.Items {
		it.Position = i + 1
		items[i] = it
	}
	return items, nil
}

// At returns the item currently displayed at the given 1-based position.
func (s *Service) At(ctx context.Context, position int) (domain.MenuItem, error) {
	doc, err := s.store.LoadMenu(ctx)
	if err != nil {
		return domain.MenuItem{}, err
	}
	if position < 1 || position > len(doc.Items) {
		return domain.MenuItem{}, fmt.Errorf("%w: position %d", domain.ErrIndexOutOfRange, position)
	}
	item := doc.Items[position-1]
	item.Position = position
	return item, nil
}

func validateItem(name string, price float64, description string) error {
	if name == "" || description == "" {
		return fmt.Errorf("%w: name and description are required", domain.ErrValidation)
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("%w: price must be a non-negative number", domain.ErrValidation)
	}
	return nil
}

// Add appends a new item. Names are checked for uniqueness here and only here.
func (s *Service) Add(ctx context.Context, name string, price float64, description string) error {
	if err := validateItem(name, price, description); err != nil {
		return err
	}
	err := s.store.UpdateMenu(ctx, func(doc *domain.MenuDoc) error {
		for _, it := range doc.Items {
			if it.Name == name {
				return domain.ErrDuplicateItem
			}
		}
		doc.Items = append(doc.Items, domain.MenuItem{
			ID:          uuid.NewString(),
			Name:        name,
			Price:       price,
			Description: description,
		})
		return nil
	})
	if err != nil {
		return err
	}
	s.lg.Info("menu_item_added", "name", name, "price", price)
	return nil
}

// Update overwrites the item at the given position in place. Renaming is not
// re-checked against other items, so an edit can introduce a duplicate name.
func (s *Service) Update(ctx context.Context, position int, name string, price float64, description string) error {
	if err := validateItem(name, price, description); err != nil {
		return err
	}
	err := s.store.UpdateMenu(ctx, func(doc *domain.MenuDoc) error {
		if position < 1 || position > len(doc.Items) {
			return fmt.Errorf("%w: position %d", domain.ErrIndexOutOfRange, position)
		}
		it := &doc.Items[position-1]
		it.Name = name
		it.Price = price
		it.Description = description
		return nil
	})
	if err != nil {
		return err
	}
	s.lg.Info("menu_item_updated", "position", position, "name", name)
	return nil
}

// Remove deletes the item at the given position. Every subsequent item's
// displayed position shifts down by one on the next listing.
func (s *Service) Remove(ctx context.Context, position int) error {
	err := s.store.UpdateMenu(ctx, func(doc *domain.MenuDoc) error {
		if position < 1 || position > len(doc.Items) {
			return fmt.Errorf("%w: position %d", domain.ErrIndexOutOfRange, position)
		}
		doc.Items = append(doc.Items[:position-1], doc.Items[position:]...)
		return nil
	})
	if err != nil {
		return err
	}
	s.lg.Info("menu_item_removed", "position", position)
	return nil
}
