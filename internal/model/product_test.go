package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		threshold int
		want      StockLevel
	}{
		{"zero quantity is out of stock", 0, 10, StockOut},
		{"below threshold is low", 5, 10, StockLow},
		{"well above threshold is in stock", 50, 10, StockIn},
		{"boundary is inclusive", 10, 10, StockLow},
		{"one above threshold is in stock", 11, 10, StockIn},
		{"unset threshold defaults to 10", 10, 0, StockLow},
		{"unset threshold, plenty of stock", 11, 0, StockIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStock(tt.quantity, tt.threshold))
		})
	}
}

func TestProduct_StockLevel(t *testing.T) {
	p := Product{Quantity: 4, LowStockThreshold: 10}
	assert.Equal(t, StockLow, p.StockLevel())

	p.Quantity = 0
	assert.Equal(t, StockOut, p.StockLevel())
}
