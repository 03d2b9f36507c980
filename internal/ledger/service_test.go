package ledger

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders/internal/cart"
	"restaurant-orders/internal/domain"
	"restaurant-orders/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.NewFileStore(t.TempDir(), lg)
	require.NoError(t, err)
	return New(store, lg)
}

func cartWith(lines ...domain.MenuItem) *cart.Cart {
	c := cart.New()
	for _, it := range lines {
		c.Add(it)
	}
	return c
}

func TestPlaceOrderTotals(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	c := cart.New()
	pizza := domain.MenuItem{ID: "pizza", Name: "Pizza", Price: 12.50}
	salad := domain.MenuItem{ID: "salad", Name: "Salad", Price: 8.00}
	c.Add(pizza)
	c.Add(pizza)
	c.Add(salad)

	orderID, err := s.PlaceOrder(ctx, "alice", c)
	require.NoError(t, err)
	assert.Equal(t, 1, orderID)

	order, err := s.GetDetails(ctx, orderID)
	require.NoError(t, err)
	assert.InDelta(t, 33.00, order.Total, 1e-9)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 25.00, order.Items[0].Subtotal, 1e-9)
	assert.InDelta(t, 8.00, order.Items[1].Subtotal, 1e-9)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, "alice", order.Username)
}

func TestPlaceOrderSkipsZeroQuantityLines(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	c := cartWith(
		domain.MenuItem{ID: "a", Name: "A", Price: 5},
		domain.MenuItem{ID: "b", Name: "B", Price: 7},
	)
	c.Decrement("a")

	orderID, err := s.PlaceOrder(ctx, "alice", c)
	require.NoError(t, err)

	order, err := s.GetDetails(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "B", order.Items[0].Name)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.PlaceOrder(ctx, "alice", cart.New())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	// A cart holding only zero-quantity rows is just as empty.
	c := cartWith(domain.MenuItem{ID: "a", Name: "A", Price: 5})
	c.Decrement("a")
	_, err = s.PlaceOrder(ctx, "alice", c)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	orders, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders, "a failed checkout must persist nothing")
}

func TestOrderIDsAreSequential(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		id, err := s.PlaceOrder(ctx, "alice", cartWith(domain.MenuItem{ID: "a", Name: "A", Price: 1}))
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestListForUserFilters(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	item := domain.MenuItem{ID: "a", Name: "A", Price: 1}
	_, err := s.PlaceOrder(ctx, "alice", cartWith(item))
	require.NoError(t, err)
	_, err = s.PlaceOrder(ctx, "bob", cartWith(item))
	require.NoError(t, err)
	_, err = s.PlaceOrder(ctx, "alice", cartWith(item))
	require.NoError(t, err)

	mine, err := s.ListForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, 1, mine[0].ID)
	assert.Equal(t, 3, mine[1].ID)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := s.ListForUser(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetDetailsNotFound(t *testing.T) {
	s := newTestService(t)
	_, err := s.GetDetails(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelOnlyPending(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	id, err := s.PlaceOrder(ctx, "alice", cartWith(domain.MenuItem{ID: "a", Name: "A", Price: 1}))
	require.NoError(t, err)

	require.NoError(t, s.Cancel(ctx, id))

	order, err := s.GetDetails(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, order.Status)

	// Cancelling twice fails: the order is no longer Pending.
	assert.ErrorIs(t, s.Cancel(ctx, id), domain.ErrInvalidTransition)

	assert.ErrorIs(t, s.Cancel(ctx, 99), domain.ErrNotFound)
}

func TestSetStatusIsUnrestricted(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	id, err := s.PlaceOrder(ctx, "alice", cartWith(domain.MenuItem{ID: "a", Name: "A", Price: 1}))
	require.NoError(t, err)

	require.NoError(t, s.SetStatus(ctx, id, domain.StatusCompleted))

	// The admin path may re-open a finished order.
	require.NoError(t, s.SetStatus(ctx, id, domain.StatusPending))
	order, err := s.GetDetails(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, order.Status)

	assert.ErrorIs(t, s.SetStatus(ctx, id, domain.Status("Shipped")), domain.ErrValidation)
	assert.ErrorIs(t, s.SetStatus(ctx, 99, domain.StatusCompleted), domain.ErrNotFound)
}

func TestOrderRoundTrip(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	fixed := time.Date(2025, 6, 1, 18, 30, 15, 0, time.Local)
	s.now = func() time.Time { return fixed }

	c := cartWith(
		domain.MenuItem{ID: "pizza", Name: "Pizza", Price: 12.50},
		domain.MenuItem{ID: "salad", Name: "Salad", Price: 8.00},
	)
	id, err := s.PlaceOrder(ctx, "alice", c)
	require.NoError(t, err)

	// Everything written at checkout reads back unchanged through the store.
	order, err := s.GetDetails(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Order{
		ID:       id,
		Username: "alice",
		Items: []domain.OrderItem{
			{Name: "Pizza", Price: 12.50, Quantity: 1, Subtotal: 12.50},
			{Name: "Salad", Price: 8.00, Quantity: 1, Subtotal: 8.00},
		},
		Total:     20.50,
		Status:    domain.StatusPending,
		OrderTime: domain.NewTimestamp(fixed),
	}, order)
}
