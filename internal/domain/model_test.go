package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampFormat(t *testing.T) {
	ts := NewTimestamp(time.Date(2025, 6, 1, 18, 30, 15, 999_000_000, time.Local))

	raw, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01 18:30:15"`, string(raw))

	var back Timestamp
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Equal(ts.Time), "timestamp must survive a round trip")
}

func TestTimestampRejectsNonString(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`1748795415`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`"June 1st"`), &ts))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, Status("Shipped").Valid())
	assert.False(t, Status("").Valid())
}

func TestOrderWireFormat(t *testing.T) {
	order := Order{
		ID:       7,
		Username: "alice",
		Items: []OrderItem{
			{Name: "Pizza", Price: 12.5, Quantity: 2, Subtotal: 25},
		},
		Total:     25,
		Status:    StatusPending,
		OrderTime: NewTimestamp(time.Date(2025, 6, 1, 18, 30, 15, 0, time.Local)),
	}

	raw, err := json.Marshal(order)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"order_id": 7,
		"username": "alice",
		"items": [{"name": "Pizza", "price": 12.5, "quantity": 2, "subtotal": 25}],
		"total": 25,
		"status": "Pending",
		"order_time": "2025-06-01 18:30:15"
	}`, string(raw))
}
