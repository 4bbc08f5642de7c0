package model

import "time"

// DefaultLowStockThreshold applies when a product has no explicit threshold.
const DefaultLowStockThreshold = 10

type StockLevel string

const (
	StockOut StockLevel = "out-of-stock"
	StockLow StockLevel = "low-stock"
	StockIn  StockLevel = "in-stock"
)

type Product struct {
	ID                string    `json:"id"`
	StoreID           string    `json:"storeId"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Price             PricePair `json:"price"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"lowStockThreshold"`
	IsActive          bool      `json:"isActive"`
	PurchaseCount     int64     `json:"purchaseCount"`
	RatingAverage     float64   `json:"ratingAverage"`
	RatingCount       int64     `json:"ratingCount"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// StockLevel classifies the product against its threshold, boundary
// inclusive: quantity == threshold is still low-stock.
func (p *Product) StockLevel() StockLevel {
	return ClassifyStock(p.Quantity, p.LowStockThreshold)
}

// ClassifyStock is the pure threshold classifier used by list filters.
func ClassifyStock(quantity, threshold int) StockLevel {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	switch {
	case quantity <= 0:
		return StockOut
	case quantity <= threshold:
		return StockLow
	default:
		return StockIn
	}
}
