package sandbox

import (
	"sync"
	"time"

	"sporthub-client/internal/model"

	"github.com/google/uuid"
)

// state is the in-memory fixture backing the sandbox. It exists for local
// development and integration tests; it is not the real backend.
type state struct {
	mu sync.Mutex

	users       map[string]*model.User // by id
	passwords   map[string]string      // email -> password
	emailIndex  map[string]string      // email -> user id
	tokens      map[string]string      // bearer token -> user id
	tournaments map[string]*model.Tournament
	teams       map[string]*model.Team
	coaches     map[string]*model.Coach
	venues      map[string]*model.Venue
	bookings    map[string]*model.Booking
	products    map[string]*model.Product
	orders      map[string]*model.Order
	ads         map[string]*model.Ad
	banners     map[string]*model.Banner
}

func newState() *state {
	s := &state{
		users:       make(map[string]*model.User),
		passwords:   make(map[string]string),
		emailIndex:  make(map[string]string),
		tokens:      make(map[string]string),
		tournaments: make(map[string]*model.Tournament),
		teams:       make(map[string]*model.Team),
		coaches:     make(map[string]*model.Coach),
		venues:      make(map[string]*model.Venue),
		bookings:    make(map[string]*model.Booking),
		products:    make(map[string]*model.Product),
		orders:      make(map[string]*model.Order),
		ads:         make(map[string]*model.Ad),
		banners:     make(map[string]*model.Banner),
	}
	s.seed()
	return s
}

func (s *state) seed() {
	now := time.Now()

	store := &model.User{
		ID:        uuid.NewString(),
		Name:      "Demo Store",
		Email:     "store@sporthub.test",
		Role:      model.RoleStore,
		Approved:  true,
		CreatedAt: now,
	}
	admin := &model.User{
		ID:        uuid.NewString(),
		Name:      "Demo Admin",
		Email:     "admin@sporthub.test",
		Role:      model.RoleAdmin,
		Approved:  true,
		CreatedAt: now,
	}
	for _, u := range []*model.User{store, admin} {
		s.users[u.ID] = u
		s.emailIndex[u.Email] = u.ID
		s.passwords[u.Email] = "password"
	}

	cricketBat := &model.Product{
		ID:                uuid.NewString(),
		StoreID:           store.ID,
		Name:              "Pro Cricket Bat",
		Category:          "cricket",
		Price:             model.PricePair{Original: 4999, Selling: 3999},
		Quantity:          25,
		LowStockThreshold: 10,
		IsActive:          true,
		CreatedAt:         now,
	}
	shuttles := &model.Product{
		ID:                uuid.NewString(),
		StoreID:           store.ID,
		Name:              "Feather Shuttlecocks (12)",
		Category:          "badminton",
		Price:             model.PricePair{Original: 1299, Selling: 1299},
		Quantity:          4,
		LowStockThreshold: 10,
		IsActive:          true,
		CreatedAt:         now,
	}
	s.products[cricketBat.ID] = cricketBat
	s.products[shuttles.ID] = shuttles

	order := &model.Order{
		ID:          uuid.NewString(),
		OrderNumber: "SH-1001",
		CustomerID:  uuid.NewString(),
		Items: []model.OrderItem{{
			ProductID: cricketBat.ID,
			Name:      cricketBat.Name,
			Price:     cricketBat.Price,
			Quantity:  1,
			Total:     cricketBat.Price.Selling,
		}},
		TotalAmount: cricketBat.Price.Selling,
		Status:      model.OrderPending,
		Payment:     model.Payment{Method: "upi", Status: "paid"},
		Shipping:    model.Shipping{Address: "12 Stadium Road", Method: "standard"},
		CreatedAt:   now,
	}
	s.orders[order.ID] = order

	ad := &model.Ad{
		ID:        uuid.NewString(),
		StoreID:   store.ID,
		ProductID: shuttles.ID,
		Title:     "Badminton Week",
		Type:      model.AdTypeSponsoredProduct,
		Status:    model.AdPending,
		Budget:    model.Budget{Total: 5000, Daily: 500},
		StartDate: now,
		EndDate:   now.AddDate(0, 0, 10),
		CreatedAt: now,
	}
	s.ads[ad.ID] = ad

	banner := &model.Banner{
		ID:       uuid.NewString(),
		Title:    "Season Opener Sale",
		ImageURL: "https://cdn.sporthub.test/banners/opener.png",
		Position: 1,
		IsActive: true,
	}
	s.banners[banner.ID] = banner

	venue := &model.Venue{
		ID:           uuid.NewString(),
		Name:         "City Indoor Arena",
		Sport:        "badminton",
		City:         "Pune",
		Address:      "4 Arena Lane",
		PricePerHour: 600,
		Rating:       4.5,
	}
	s.venues[venue.ID] = venue
}

func (s *state) userForToken(token string) (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	if !ok {
		return nil, false
	}
	u, ok := s.users[id]
	return u, ok
}

func (s *state) issueToken(userID string) string {
	token := uuid.NewString()
	s.tokens[token] = userID
	return token
}
