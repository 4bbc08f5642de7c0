package model

import (
	"encoding/json"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// orderFlow is the only legal forward progression. Cancellation is an
// absorbing state the store side never enters itself, it is only displayed.
var orderFlow = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderProcessing,
	OrderShipped,
	OrderDelivered,
}

// Next returns the status immediately following s in the fulfillment flow.
// ok is false when s is terminal or not part of the flow (e.g. cancelled),
// meaning no advance may be offered.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, st := range orderFlow {
		if st == s {
			if i+1 < len(orderFlow) {
				return orderFlow[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// Terminal reports whether no further client-driven transition exists.
func (s OrderStatus) Terminal() bool {
	_, ok := s.Next()
	return !ok
}

// ParseOrderStatus normalizes a backend status string. The backend enum uses
// "completed" as a synonym for "delivered" on some endpoints.
func ParseOrderStatus(raw string) OrderStatus {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if s == "completed" {
		return OrderDelivered
	}
	return s
}

func (s *OrderStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = ParseOrderStatus(raw)
	return nil
}

type OrderItem struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"` // snapshot at purchase time
	Price     PricePair `json:"price"`
	Quantity  int       `json:"quantity"`
	Total     float64   `json:"total"`
}

type Order struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	CustomerID  string      `json:"customerId"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	Payment     Payment     `json:"payment"`
	Shipping    Shipping    `json:"shipping"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
