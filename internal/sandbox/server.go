// Package sandbox is a local stand-in for the SportHub backend. It speaks
// the same {success, data, message} envelope over the same routes so the
// client SDK can be exercised end to end without the real service.
package sandbox

import (
	"net/http"
	"strings"

	"sporthub-client/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Success: false, Message: message})
}

type Server struct {
	echo  *echo.Echo
	state *state
}

func NewServer() *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:  e,
		state: newState(),
	}

	s.setupRoutes()
	return s
}

// authRequired resolves the bearer token to a sandbox user; 401s carry the
// envelope shape the client's interceptor expects.
func (s *Server) authRequired(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return fail(c, http.StatusUnauthorized, "missing token")
			}

			user, ok := s.state.userForToken(token)
			if !ok {
				return fail(c, http.StatusUnauthorized, "invalid token")
			}

			if len(roles) > 0 {
				allowed := false
				for _, r := range roles {
					if user.Role == r {
						allowed = true
						break
					}
				}
				if !allowed {
					return fail(c, http.StatusForbidden, "role not permitted")
				}
			}

			c.Set("user", user)
			return next(c)
		}
	}
}

func currentUser(c echo.Context) *model.User {
	u, _ := c.Get("user").(*model.User)
	return u
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return respond(c, http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/login", s.handleLogin)
	auth.POST("/register", s.handleRegister)
	auth.GET("/me", s.handleMe, s.authRequired())
	auth.PUT("/profile", s.handleUpdateProfile, s.authRequired())
	auth.POST("/logout", s.handleLogout, s.authRequired())

	// -------- public catalog --------
	api.GET("/tournaments", s.handleTournaments)
	api.GET("/tournaments/my", s.handleMyTournaments, s.authRequired())
	api.GET("/tournaments/:id", s.handleTournament)
	api.POST("/tournaments", s.handleCreateTournament, s.authRequired())
	api.PUT("/tournaments/:id", s.handleUpdateTournament, s.authRequired())
	api.DELETE("/tournaments/:id", s.handleDeleteTournament, s.authRequired())

	api.GET("/coaches", s.handleCoaches)
	api.GET("/coaches/dashboard", s.handleCoachDashboard, s.authRequired(model.RoleCoach))
	api.GET("/coaches/:id", s.handleCoach)
	api.PUT("/coaches/availability", s.handleCoachAvailability, s.authRequired(model.RoleCoach))

	api.GET("/teams", s.handleTeams)
	api.GET("/teams/:id", s.handleTeam)
	api.POST("/teams", s.handleCreateTeam, s.authRequired())

	api.GET("/venues", s.handleVenues)
	api.GET("/venues/:id", s.handleVenue)
	api.POST("/venues/:id/book", s.handleBookVenue, s.authRequired())

	api.GET("/bookings", s.handleBookings, s.authRequired())
	api.GET("/bookings/my", s.handleMyBookings, s.authRequired())

	api.GET("/banners", s.handleBanners)
	api.POST("/banners/:id/click", s.handleBannerClick)

	// -------- store role --------
	stores := api.Group("/stores", s.authRequired(model.RoleStore))
	stores.GET("/dashboard", s.handleStoreDashboard)
	stores.GET("/my-profile", s.handleMyStoreProfile)
	stores.PUT("/profile", s.handleUpdateStoreProfile)
	stores.GET("/products", s.handleStoreProducts)
	stores.POST("/products", s.handleCreateProduct)
	stores.PUT("/products/:id", s.handleUpdateProduct)
	stores.DELETE("/products/:id", s.handleDeleteProduct)
	stores.PATCH("/products/:id/quantity", s.handleSetQuantity)
	stores.PATCH("/products/:id/active", s.handleSetActive)

	orders := api.Group("/orders", s.authRequired(model.RoleStore, model.RoleAdmin))
	orders.GET("/store", s.handleStoreOrders)
	orders.GET("/:id", s.handleOrder)
	orders.PATCH("/:id/status", s.handleOrderStatus)

	ads := api.Group("/ads", s.authRequired(model.RoleStore))
	ads.GET("/store", s.handleStoreAds)
	ads.POST("", s.handleCreateAd)

	// -------- admin role --------
	admin := api.Group("/admin", s.authRequired(model.RoleAdmin))
	admin.GET("/users", s.handleAdminUsers)
	admin.GET("/dashboard", s.handleAdminDashboard)
	admin.POST("/coaches/:id/approve", s.handleApproveCoach)
	admin.GET("/ads", s.handleAdminAds)
	admin.POST("/ads/:id/approve", s.handleApproveAd)
	admin.POST("/ads/:id/reject", s.handleRejectAd)
	admin.POST("/banners", s.handleCreateBanner)
	admin.PUT("/banners/:id", s.handleUpdateBanner)
	admin.DELETE("/banners/:id", s.handleDeleteBanner)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Handler exposes the router for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.echo
}
