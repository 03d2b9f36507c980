package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders/internal/domain"
)

var (
	soup  = domain.MenuItem{ID: "soup", Name: "Soup", Price: 3.50}
	pizza = domain.MenuItem{ID: "pizza", Name: "Pizza", Price: 12.50}
)

func TestAddAccumulates(t *testing.T) {
	c := New()
	c.Add(soup)
	c.Add(soup)
	c.Add(pizza)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Soup", lines[0].Name)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.InDelta(t, 2*3.50+12.50, c.Total(), 1e-9)
}

func TestAddThenDecrementReturnsToEmpty(t *testing.T) {
	c := New()
	for _, n := range []int{0, 1, 5} {
		c.Clear()
		for i := 0; i < n; i++ {
			c.Add(soup)
		}
		for i := 0; i < n; i++ {
			c.Decrement(soup.ID)
		}
		assert.Zero(t, c.Total(), "n=%d", n)
		assert.True(t, c.Empty(), "n=%d", n)
	}
}

func TestDecrementFloorsAtZero(t *testing.T) {
	c := New()
	c.Add(soup)
	c.Decrement(soup.ID)
	c.Decrement(soup.ID)       // already zero: no-op
	c.Decrement("never-added") // absent line: no-op

	// The zero row stays visible until the cart is cleared, but counts for
	// nothing.
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Zero(t, lines[0].Quantity)
	assert.Zero(t, c.Total())
	assert.True(t, c.Empty())
}

func TestPriceSnapshottedAtAddTime(t *testing.T) {
	c := New()
	item := domain.MenuItem{ID: "dish", Name: "Dish", Price: 10}
	c.Add(item)

	// Catalog price changes mid-session; the line keeps the old price.
	item.Price = 99
	c.Add(item)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 10.0, lines[0].Price)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.InDelta(t, 20.0, c.Total(), 1e-9)
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(soup)
	c.Add(pizza)
	c.Clear()

	assert.Empty(t, c.Lines())
	assert.Zero(t, c.Total())
	assert.True(t, c.Empty())
}
