package model

import "time"

type AdStatus string

const (
	AdDraft     AdStatus = "draft"
	AdPending   AdStatus = "pending"
	AdApproved  AdStatus = "approved"
	AdRejected  AdStatus = "rejected"
	AdActive    AdStatus = "active"
	AdPaused    AdStatus = "paused"
	AdCompleted AdStatus = "completed"
	AdExpired   AdStatus = "expired"
)

// adTransitions is the full campaign lifecycle. The client only ever drives
// pending -> approved and pending -> rejected; everything past approval is
// backend-driven (budget exhaustion, date expiry) and read-only here.
var adTransitions = map[AdStatus][]AdStatus{
	AdDraft:     {AdPending},
	AdPending:   {AdApproved, AdRejected},
	AdApproved:  {AdActive},
	AdActive:    {AdPaused, AdCompleted, AdExpired},
	AdPaused:    {AdActive},
	AdRejected:  {},
	AdCompleted: {},
	AdExpired:   {},
}

// CanTransitionTo checks the lifecycle table.
func (s AdStatus) CanTransitionTo(target AdStatus) bool {
	for _, t := range adTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Moderatable reports whether approve/reject may be offered for this status.
func (s AdStatus) Moderatable() bool {
	return s == AdPending
}

type AdType string

const (
	AdTypeHomeBanner       AdType = "home_banner"
	AdTypeCategoryBanner   AdType = "category_banner"
	AdTypeSponsoredProduct AdType = "sponsored_product"
)

// adDailyRates are flat per-day rates used only for the client-side cost
// estimate shown during creation. The authoritative budget lives in Budget.
var adDailyRates = map[AdType]int64{
	AdTypeHomeBanner:       500,
	AdTypeCategoryBanner:   300,
	AdTypeSponsoredProduct: 200,
}

// DailyRate returns the flat display rate for the ad type, ok is false for an
// unknown type.
func (t AdType) DailyRate() (int64, bool) {
	r, ok := adDailyRates[t]
	return r, ok
}

type Budget struct {
	Total float64 `json:"total"`
	Daily float64 `json:"daily"`
	// spent accumulates server-side from metrics ingestion only; the
	// advertised invariant spent <= total is not enforced client-side
	Spent float64 `json:"spent"`
}

type Targeting struct {
	Cities   []string `json:"cities,omitempty"`
	States   []string `json:"states,omitempty"`
	Category string   `json:"category,omitempty"`
	Gender   string   `json:"gender,omitempty"`
}

type AdMetrics struct {
	Views  int64   `json:"views"`
	Clicks int64   `json:"clicks"`
	CTR    float64 `json:"ctr"`
}

type Ad struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	ProductID string    `json:"productId"`
	Title     string    `json:"title"`
	Type      AdType    `json:"adType"`
	Status    AdStatus  `json:"status"`
	Budget    Budget    `json:"budget"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Targeting Targeting `json:"targeting"`
	Metrics   AdMetrics `json:"metrics"`
	Payment   Payment   `json:"payment"`
	Reason    string    `json:"rejectionReason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
