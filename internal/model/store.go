package model

import "time"

type StoreProfile struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Address     string    `json:"address"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StoreDashboard is the aggregate card data on the store home screen.
type StoreDashboard struct {
	TotalOrders    int64   `json:"totalOrders"`
	PendingOrders  int64   `json:"pendingOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalProducts  int64   `json:"totalProducts"`
	LowStockCount  int64   `json:"lowStockCount"`
	ActiveAdsCount int64   `json:"activeAdsCount"`
}

type Banner struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl,omitempty"`
	Position int    `json:"position"`
	IsActive bool   `json:"isActive"`
	Clicks   int64  `json:"clicks"`
}

// AdminDashboard is the platform-wide stats card for the admin role.
type AdminDashboard struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalStores    int64 `json:"totalStores"`
	TotalOrders    int64 `json:"totalOrders"`
	PendingCoaches int64 `json:"pendingCoaches"`
	PendingAds     int64 `json:"pendingAds"`
}
