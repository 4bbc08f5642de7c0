package sandbox

import (
	"net/http"
	"strings"
	"time"

	"sporthub-client/internal/dto"
	"sporthub-client/internal/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleStoreDashboard(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	storeID := currentUser(c).ID
	dash := model.StoreDashboard{}
	for _, o := range s.state.orders {
		dash.TotalOrders++
		if o.Status == model.OrderPending {
			dash.PendingOrders++
		}
		if o.Status == model.OrderDelivered {
			dash.TotalRevenue += o.TotalAmount
		}
	}
	for _, p := range s.state.products {
		if p.StoreID != storeID {
			continue
		}
		dash.TotalProducts++
		if p.StockLevel() != model.StockIn {
			dash.LowStockCount++
		}
	}
	for _, a := range s.state.ads {
		if a.StoreID == storeID && a.Status == model.AdActive {
			dash.ActiveAdsCount++
		}
	}
	return respond(c, http.StatusOK, dash)
}

func (s *Server) handleMyStoreProfile(c echo.Context) error {
	u := currentUser(c)
	return respond(c, http.StatusOK, model.StoreProfile{
		ID:      u.ID,
		OwnerID: u.ID,
		Name:    u.Name,
		City:    u.City,
		State:   u.State,
	})
}

func (s *Server) handleUpdateStoreProfile(c echo.Context) error {
	var profile model.StoreProfile
	if err := c.Bind(&profile); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	profile.OwnerID = currentUser(c).ID
	return respond(c, http.StatusOK, profile)
}

func (s *Server) handleStoreProducts(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []model.Product{}
	for _, p := range s.state.products {
		if p.StoreID == currentUser(c).ID {
			out = append(out, *p)
		}
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleCreateProduct(c echo.Context) error {
	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	p := &model.Product{
		ID:                uuid.NewString(),
		StoreID:           currentUser(c).ID,
		Name:              req.Name,
		Category:          req.Category,
		Price:             req.Price,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          req.IsActive,
		CreatedAt:         time.Now(),
	}
	s.state.products[p.ID] = p
	return respond(c, http.StatusCreated, p)
}

func (s *Server) storeProduct(c echo.Context) (*model.Product, error) {
	p, ok := s.state.products[c.Param("id")]
	if !ok || p.StoreID != currentUser(c).ID {
		return nil, fail(c, http.StatusNotFound, "")
	}
	return p, nil
}

func (s *Server) handleUpdateProduct(c echo.Context) error {
	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	p, failErr := s.storeProduct(c)
	if p == nil {
		return failErr
	}
	p.Name, p.Category, p.Price = req.Name, req.Category, req.Price
	p.Quantity, p.LowStockThreshold, p.IsActive = req.Quantity, req.LowStockThreshold, req.IsActive
	p.UpdatedAt = time.Now()
	return respond(c, http.StatusOK, p)
}

func (s *Server) handleDeleteProduct(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	p, failErr := s.storeProduct(c)
	if p == nil {
		return failErr
	}
	delete(s.state.products, p.ID)
	return respond(c, http.StatusOK, nil)
}

func (s *Server) handleSetQuantity(c echo.Context) error {
	var req dto.SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.Quantity < 0 {
		return fail(c, http.StatusBadRequest, "quantity must be non-negative")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	p, failErr := s.storeProduct(c)
	if p == nil {
		return failErr
	}
	// absolute replacement, never an increment
	p.Quantity = req.Quantity
	p.UpdatedAt = time.Now()
	return respond(c, http.StatusOK, p)
}

func (s *Server) handleSetActive(c echo.Context) error {
	var req dto.SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	p, failErr := s.storeProduct(c)
	if p == nil {
		return failErr
	}
	p.IsActive = req.IsActive
	p.UpdatedAt = time.Now()
	return respond(c, http.StatusOK, p)
}

func (s *Server) handleStoreOrders(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	status := model.OrderStatus(c.QueryParam("status"))
	out := []model.Order{}
	for _, o := range s.state.orders {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, *o)
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleOrder(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	o, ok := s.state.orders[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}
	return respond(c, http.StatusOK, o)
}

// handleOrderStatus validates the requested transition against the same
// forward-only table the client uses. A duplicate request carrying the
// current status is treated as a no-op success so slow duplicate advances
// do not error out.
func (s *Server) handleOrderStatus(c echo.Context) error {
	var req dto.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	o, ok := s.state.orders[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}

	if req.Status == o.Status {
		return respond(c, http.StatusOK, o)
	}

	next, ok := o.Status.Next()
	if !ok || next != req.Status {
		return fail(c, http.StatusBadRequest, "invalid status transition")
	}

	o.Status = req.Status
	o.UpdatedAt = time.Now()
	return respond(c, http.StatusOK, o)
}

func (s *Server) handleStoreAds(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []model.Ad{}
	for _, a := range s.state.ads {
		if a.StoreID == currentUser(c).ID {
			out = append(out, *a)
		}
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleCreateAd(c echo.Context) error {
	var input dto.CreateAdInput
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.products[input.ProductID]; !ok {
		return fail(c, http.StatusBadRequest, "unknown product")
	}

	a := &model.Ad{
		ID:        uuid.NewString(),
		StoreID:   currentUser(c).ID,
		ProductID: input.ProductID,
		Title:     input.Title,
		Type:      input.Type,
		Status:    model.AdPending,
		Budget:    model.Budget{Total: input.TotalBudget, Daily: input.DailyBudget},
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Targeting: input.Targeting,
		CreatedAt: time.Now(),
	}
	s.state.ads[a.ID] = a
	return respond(c, http.StatusCreated, a)
}

func (s *Server) handleAdminAds(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	status := model.AdStatus(c.QueryParam("status"))
	out := []model.Ad{}
	for _, a := range s.state.ads {
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, *a)
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleApproveAd(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	a, ok := s.state.ads[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}
	if !a.Status.CanTransitionTo(model.AdApproved) {
		return fail(c, http.StatusBadRequest, "ad is not pending review")
	}

	// approval activates immediately when the window has started
	a.Status = model.AdApproved
	if !a.StartDate.After(time.Now()) {
		a.Status = model.AdActive
	}
	a.UpdatedAt = time.Now()
	return respond(c, http.StatusOK, a)
}

func (s *Server) handleRejectAd(c echo.Context) error {
	var req dto.RejectAdRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return fail(c, http.StatusBadRequest, "rejection reason is required")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	a, ok := s.state.ads[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}
	if !a.Status.CanTransitionTo(model.AdRejected) {
		return fail(c, http.StatusBadRequest, "ad is not pending review")
	}

	a.Status = model.AdRejected
	a.Reason = req.Reason
	a.UpdatedAt = time.Now()
	return respond(c, http.StatusOK, a)
}

func (s *Server) handleAdminUsers(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	role := model.Role(c.QueryParam("role"))
	out := []model.User{}
	for _, u := range s.state.users {
		if role != "" && u.Role != role {
			continue
		}
		out = append(out, *u)
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleAdminDashboard(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	dash := model.AdminDashboard{
		TotalUsers:  int64(len(s.state.users)),
		TotalOrders: int64(len(s.state.orders)),
	}
	for _, u := range s.state.users {
		if u.Role == model.RoleStore {
			dash.TotalStores++
		}
		if u.Role == model.RoleCoach && !u.Approved {
			dash.PendingCoaches++
		}
	}
	for _, a := range s.state.ads {
		if a.Status == model.AdPending {
			dash.PendingAds++
		}
	}
	return respond(c, http.StatusOK, dash)
}

func (s *Server) handleApproveCoach(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	u, ok := s.state.users[c.Param("id")]
	if !ok || u.Role != model.RoleCoach {
		return fail(c, http.StatusNotFound, "")
	}
	u.Approved = true
	return respond(c, http.StatusOK, u)
}

func (s *Server) handleCreateBanner(c echo.Context) error {
	var req dto.BannerRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	b := &model.Banner{
		ID:       uuid.NewString(),
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Position: req.Position,
		IsActive: req.IsActive,
	}
	s.state.banners[b.ID] = b
	return respond(c, http.StatusCreated, b)
}

func (s *Server) handleUpdateBanner(c echo.Context) error {
	var req dto.BannerRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	b, ok := s.state.banners[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}
	b.Title, b.ImageURL, b.LinkURL = req.Title, req.ImageURL, req.LinkURL
	b.Position, b.IsActive = req.Position, req.IsActive
	return respond(c, http.StatusOK, b)
}

func (s *Server) handleDeleteBanner(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.banners[c.Param("id")]; !ok {
		return fail(c, http.StatusNotFound, "")
	}
	delete(s.state.banners, c.Param("id"))
	return respond(c, http.StatusOK, nil)
}
