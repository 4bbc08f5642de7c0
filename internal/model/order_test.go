package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Next_WalksTheFullFlow(t *testing.T) {
	expected := []OrderStatus{OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered}

	status := OrderPending
	for _, want := range expected {
		next, ok := status.Next()
		require.True(t, ok, "expected an advance from %s", status)
		assert.Equal(t, want, next)
		status = next
	}

	// delivered is terminal
	_, ok := status.Next()
	assert.False(t, ok)
}

func TestOrderStatus_Next_NoAdvanceFromCancelled(t *testing.T) {
	_, ok := OrderCancelled.Next()
	assert.False(t, ok)
}

func TestOrderStatus_Next_NoAdvanceFromUnknown(t *testing.T) {
	_, ok := OrderStatus("refunded").Next()
	assert.False(t, ok)
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.False(t, OrderPending.Terminal())
	assert.False(t, OrderShipped.Terminal())
	assert.True(t, OrderDelivered.Terminal())
	assert.True(t, OrderCancelled.Terminal())
}

func TestParseOrderStatus_NormalizesCompleted(t *testing.T) {
	assert.Equal(t, OrderDelivered, ParseOrderStatus("completed"))
	assert.Equal(t, OrderDelivered, ParseOrderStatus("Completed"))
	assert.Equal(t, OrderDelivered, ParseOrderStatus(" COMPLETED "))
	assert.Equal(t, OrderPending, ParseOrderStatus("pending"))
	assert.Equal(t, OrderShipped, ParseOrderStatus("Shipped"))
}

func TestOrderStatus_UnmarshalJSON(t *testing.T) {
	var order Order
	raw := `{"id":"o-1","status":"completed","totalAmount":100}`

	require.NoError(t, json.Unmarshal([]byte(raw), &order))
	assert.Equal(t, OrderDelivered, order.Status)
}
