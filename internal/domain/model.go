package domain

import (
	"fmt"
	"time"
)

// Role selects one of the two disjoint account partitions.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

// UserAccount is a customer account. Phone is kept only for users.
type UserAccount struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// AdminAccount carries no phone. The two partitions live side by side in the
// accounts collection and are never checked against each other.
type AdminAccount struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Account is the credential-free view returned by authentication.
type Account struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

// MenuItem is identified internally by a stable ID assigned at creation.
// Position is the dense 1-based display identifier, re-derived from the
// item's index in the stored sequence on every listing; it is never persisted.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`

	Position int `json:"-"`
}

// OrderItem is an immutable snapshot of one cart line taken at checkout.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// Status is an order's lifecycle state.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// TimeLayout is the persisted order_time format, local clock.
const TimeLayout = "2006-01-02 15:04:05"

// Timestamp serializes as "YYYY-MM-DD HH:MM:SS" in local time, the layout
// the orders collection uses on disk.
type Timestamp struct{ time.Time }

// NewTimestamp drops sub-second precision so a written value reads back equal.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.Local().Truncate(time.Second)}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.Format(TimeLayout))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("order_time must be a string, got %s", s)
	}
	parsed, err := time.ParseInLocation(TimeLayout, s[1:len(s)-1], time.Local)
	if err != nil {
		return fmt.Errorf("parse order_time: %w", err)
	}
	t.Time = parsed
	return nil
}

// Order is created at checkout and mutated only through status transitions.
// Orders are never deleted; cancellation is a transition, not removal.
type Order struct {
	ID        int         `json:"order_id"`
	Username  string      `json:"username"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    Status      `json:"status"`
	OrderTime Timestamp   `json:"order_time"`
}

// AccountsDoc is the whole-document shape of the accounts collection.
type AccountsDoc struct {
	Users  []UserAccount  `json:"users"`
	Admins []AdminAccount `json:"admins"`
}

// MenuDoc is the whole-document shape of the menu collection.
type MenuDoc struct {
	Items []MenuItem `json:"items"`
}

// OrdersDoc is the whole-document shape of the orders collection.
type OrdersDoc struct {
	Orders []Order `json:"orders"`
}
