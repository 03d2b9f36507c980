// Package ledger owns the order lifecycle: creation from a cart, status
// transitions, and per-user and global queries.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restaurant-orders/internal/cart"
	"restaurant-orders/internal/common/metrics"
	"restaurant-orders/internal/domain"
	"restaurant-orders/internal/storage"
)

type ServiceInterface interface {
	PlaceOrder(ctx context.Context, username string, c *cart.Cart) (int, error)
	ListForUser(ctx context.Context, username string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	GetDetails(ctx context.Context, orderID int) (domain.Order, error)
	Cancel(ctx context.Context, orderID int) error
	SetStatus(ctx context.Context, orderID int, status domain.Status) error
}

type Service struct {
	store storage.Store
	lg    *slog.Logger
	now   func() time.Time
}

func New(store storage.Store, lg *slog.Logger) *Service {
	return &Service{store: store, lg: lg, now: time.Now}
}

// PlaceOrder commits the cart's positive-quantity lines as a new order.
// The id is assigned as count+1 inside the store's locked update, so two
// concurrent checkouts can never observe the same count. The caller remains
// responsible for clearing the cart afterwards.
func (s *Service) PlaceOrder(ctx context.Context, username string, c *cart.Cart) (int, error) {
	var items []domain.OrderItem
	var total float64
	for _, ln := range c.Lines() {
		if ln.Quantity <= 0 {
			continue
		}
		subtotal := ln.Price * float64(ln.Quantity)
		total += subtotal
		items = append(items, domain.OrderItem{
			Name:     ln.Name,
			Price:    ln.Price,
			Quantity: ln.Quantity,
			Subtotal: subtotal,
		})
	}
	if len(items) == 0 {
		return 0, domain.ErrEmptyCart
	}

	var orderID int
	err := s.store.UpdateOrders(ctx, func(doc *domain.OrdersDoc) error {
		orderID = len(doc.Orders) + 1
		doc.Orders = append(doc.Orders, domain.Order{
			ID:        orderID,
			Username:  username,
			Items:     items,
			Total:     total,
			Status:    domain.StatusPending,
			OrderTime: domain.NewTimestamp(s.now()),
		})
		return nil
	})
	if err != nil {
		return 0, err
	}

	metrics.OrdersPlaced.Inc()
	s.lg.Info("order_placed", "order_id", orderID, "username", username, "total", total)
	return orderID, nil
}

// ListForUser returns the user's orders in storage (creation) order.
func (s *Service) ListForUser(ctx context.Context, username string) ([]domain.Order, error) {
	doc, err := s.store.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Order
	for _, o := range doc.Orders {
		if o.Username == username {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	doc, err := s.store.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Orders, nil
}

func (s *Service) GetDetails(ctx context.Context, orderID int) (domain.Order, error) {
	doc, err := s.store.LoadOrders(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range doc.Orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
}

// Cancel moves a Pending order to Cancelled. Any other current status is an
// invalid transition; the admin override lives in SetStatus.
func (s *Service) Cancel(ctx context.Context, orderID int) error {
	err := s.store.UpdateOrders(ctx, func(doc *domain.OrdersDoc) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID != orderID {
				continue
			}
			if doc.Orders[i].Status != domain.StatusPending {
				return fmt.Errorf("%w: order %d is %s", domain.ErrInvalidTransition, orderID, doc.Orders[i].Status)
			}
			doc.Orders[i].Status = domain.StatusCancelled
			return nil
		}
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	})
	if err != nil {
		return err
	}
	metrics.StatusTransitions.WithLabelValues(string(domain.StatusCancelled)).Inc()
	s.lg.Info("order_cancelled", "order_id", orderID)
	return nil
}

// SetStatus is the administrative transition: any of the three statuses may be
// set regardless of the current one, including re-opening a Completed or
// Cancelled order back to Pending.
func (s *Service) SetStatus(ctx context.Context, orderID int, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	err := s.store.UpdateOrders(ctx, func(doc *domain.OrdersDoc) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID == orderID {
				doc.Orders[i].Status = status
				return nil
			}
		}
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	})
	if err != nil {
		return err
	}
	metrics.StatusTransitions.WithLabelValues(string(status)).Inc()
	s.lg.Info("order_status_updated", "order_id", orderID, "status", string(status))
	return nil
}
