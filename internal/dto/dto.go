package dto

import (
	"time"

	"sporthub-client/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6"`
	Phone    string     `json:"phone,omitempty"`
	Role     model.Role `json:"role" validate:"required,oneof=player coach store delivery admin"`
}

// AuthResponse is the login/register envelope data; the token goes straight
// into the session store.
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

type TournamentRequest struct {
	Name      string    `json:"name" validate:"required"`
	Sport     string    `json:"sport" validate:"required"`
	City      string    `json:"city" validate:"required"`
	State     string    `json:"state,omitempty"`
	EntryFee  float64   `json:"entryFee" validate:"gte=0"`
	MaxTeams  int       `json:"maxTeams" validate:"gt=0"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
}

type BookVenueRequest struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

type ProductRequest struct {
	Name              string          `json:"name" validate:"required"`
	Category          string          `json:"category" validate:"required"`
	Price             model.PricePair `json:"price" validate:"required"`
	Quantity          int             `json:"quantity" validate:"gte=0"`
	LowStockThreshold int             `json:"lowStockThreshold,omitempty" validate:"gte=0"`
	IsActive          bool            `json:"isActive"`
}

type SetQuantityRequest struct {
	// absolute replacement, never an increment
	Quantity int `json:"quantity"`
}

type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

// CreateAdInput is the multi-step ad form payload. Budget figures are
// authoritative; the client-side cost estimate is display-only and never
// written into them.
type CreateAdInput struct {
	Title       string          `json:"title" validate:"required"`
	ProductID   string          `json:"productId" validate:"required"`
	Type        model.AdType    `json:"adType" validate:"required,oneof=home_banner category_banner sponsored_product"`
	StartDate   time.Time       `json:"startDate" validate:"required"`
	EndDate     time.Time       `json:"endDate" validate:"required,gtfield=StartDate"`
	TotalBudget float64         `json:"totalBudget" validate:"gt=0"`
	DailyBudget float64         `json:"dailyBudget" validate:"gt=0"`
	Targeting   model.Targeting `json:"targeting"`
}

type RejectAdRequest struct {
	Reason string `json:"reason"`
}

type BannerRequest struct {
	Title    string `json:"title" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
	LinkURL  string `json:"linkUrl,omitempty"`
	Position int    `json:"position" validate:"gte=0"`
	IsActive bool   `json:"isActive"`
}
