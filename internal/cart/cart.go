// Package cart holds a session's menu selections. A cart lives entirely in
// memory: nothing is persisted until checkout, and the catalog can change
// underneath it without affecting prices already snapshotted into its lines.
package cart

import (
	"sync"

	"restaurant-orders/internal/domain"
)

// Line is one selected item. Price and name are captured at add-time and kept
// even if the catalog entry is edited or removed mid-session.
type Line struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart accumulates lines in insertion order. A line decremented to zero stays
// visible in Lines until the cart is cleared, but contributes nothing to the
// total and is dropped at checkout.
type Cart struct {
	mu    sync.Mutex
	lines []*Line
	index map[string]*Line
}

func New() *Cart {
	return &Cart{index: make(map[string]*Line)}
}

// Add increments the line for the given item, creating it with the item's
// current price when the item is not in the cart yet.
func (c *Cart) Add(item domain.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ln, ok := c.index[item.ID]; ok {
		ln.Quantity++
		return
	}
	ln := &Line{ItemID: item.ID, Name: item.Name, Price: item.Price, Quantity: 1}
	c.lines = append(c.lines, ln)
	c.index[item.ID] = ln
}

// Decrement lowers a line's quantity by one, stopping at zero. Decrementing an
// absent or already-zero line is a no-op.
func (c *Cart) Decrement(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ln, ok := c.index[itemID]; ok && ln.Quantity > 0 {
		ln.Quantity--
	}
}

// Lines returns a copy of every line, zero-quantity rows included.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	for i, ln := range c.lines {
		out[i] = *ln
	}
	return out
}

// Total sums price*quantity over the lines with a positive quantity.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, ln := range c.lines {
		if ln.Quantity > 0 {
			total += ln.Price * float64(ln.Quantity)
		}
	}
	return total
}

// Empty reports whether no line has a positive quantity.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ln := range c.lines {
		if ln.Quantity > 0 {
			return false
		}
	}
	return true
}

// Clear drops every line. Called after a successful checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.index = make(map[string]*Line)
}
