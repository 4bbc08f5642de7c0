package sandbox

import (
	"net/http"
	"time"

	"sporthub-client/internal/dto"
	"sporthub-client/internal/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleLogin(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	userID, ok := s.state.emailIndex[req.Email]
	if !ok || s.state.passwords[req.Email] != req.Password {
		return fail(c, http.StatusBadRequest, "Invalid email or password")
	}

	token := s.state.issueToken(userID)
	return respond(c, http.StatusOK, dto.AuthResponse{Token: token, User: *s.state.users[userID]})
}

func (s *Server) handleRegister(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, exists := s.state.emailIndex[req.Email]; exists {
		return fail(c, http.StatusBadRequest, "Email already registered")
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		Approved:  req.Role != model.RoleCoach, // coaches wait for admin approval
		CreatedAt: time.Now(),
	}
	s.state.users[user.ID] = user
	s.state.emailIndex[user.Email] = user.ID
	s.state.passwords[user.Email] = req.Password

	token := s.state.issueToken(user.ID)
	return respond(c, http.StatusCreated, dto.AuthResponse{Token: token, User: *user})
}

func (s *Server) handleMe(c echo.Context) error {
	return respond(c, http.StatusOK, currentUser(c))
}

func (s *Server) handleUpdateProfile(c echo.Context) error {
	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	user := s.state.users[currentUser(c).ID]
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.State != "" {
		user.State = req.State
	}
	return respond(c, http.StatusOK, user)
}

func (s *Server) handleLogout(c echo.Context) error {
	header := c.Request().Header.Get("Authorization")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	delete(s.state.tokens, header[len("Bearer "):])

	return respond(c, http.StatusOK, nil)
}

func (s *Server) handleTournaments(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	sport, city := c.QueryParam("sport"), c.QueryParam("city")
	out := []model.Tournament{}
	for _, t := range s.state.tournaments {
		if sport != "" && t.Sport != sport {
			continue
		}
		if city != "" && t.City != city {
			continue
		}
		out = append(out, *t)
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleMyTournaments(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []model.Tournament{}
	for _, t := range s.state.tournaments {
		if t.OrganizerID == currentUser(c).ID {
			out = append(out, *t)
		}
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleTournament(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	t, ok := s.state.tournaments[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}
	return respond(c, http.StatusOK, t)
}

func (s *Server) handleCreateTournament(c echo.Context) error {
	var req dto.TournamentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	t := &model.Tournament{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Sport:       req.Sport,
		City:        req.City,
		State:       req.State,
		EntryFee:    req.EntryFee,
		MaxTeams:    req.MaxTeams,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		OrganizerID: currentUser(c).ID,
		Status:      "upcoming",
		CreatedAt:   time.Now(),
	}
	s.state.tournaments[t.ID] = t
	return respond(c, http.StatusCreated, t)
}

func (s *Server) handleUpdateTournament(c echo.Context) error {
	var req dto.TournamentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	t, ok := s.state.tournaments[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}
	if t.OrganizerID != currentUser(c).ID {
		return fail(c, http.StatusForbidden, "not your tournament")
	}

	t.Name, t.Sport, t.City, t.State = req.Name, req.Sport, req.City, req.State
	t.EntryFee, t.MaxTeams = req.EntryFee, req.MaxTeams
	t.StartDate, t.EndDate = req.StartDate, req.EndDate
	return respond(c, http.StatusOK, t)
}

func (s *Server) handleDeleteTournament(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	t, ok := s.state.tournaments[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}
	if t.OrganizerID != currentUser(c).ID {
		return fail(c, http.StatusForbidden, "not your tournament")
	}
	delete(s.state.tournaments, t.ID)
	return respond(c, http.StatusOK, nil)
}

func (s *Server) handleCoaches(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []model.Coach{}
	for _, coach := range s.state.coaches {
		if coach.Approved {
			out = append(out, *coach)
		}
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleCoach(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	coach, ok := s.state.coaches[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}
	return respond(c, http.StatusOK, coach)
}

func (s *Server) handleCoachDashboard(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for _, coach := range s.state.coaches {
		if coach.UserID == currentUser(c).ID {
			return respond(c, http.StatusOK, coach)
		}
	}
	return fail(c, http.StatusNotFound, "")
}

func (s *Server) handleCoachAvailability(c echo.Context) error {
	var req struct {
		Available bool `json:"available"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for _, coach := range s.state.coaches {
		if coach.UserID == currentUser(c).ID {
			coach.Available = req.Available
			return respond(c, http.StatusOK, coach)
		}
	}
	return fail(c, http.StatusNotFound, "")
}

func (s *Server) handleTeams(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []model.Team{}
	for _, t := range s.state.teams {
		out = append(out, *t)
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleTeam(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	t, ok := s.state.teams[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}
	return respond(c, http.StatusOK, t)
}

func (s *Server) handleCreateTeam(c echo.Context) error {
	var req struct {
		Name  string `json:"name"`
		Sport string `json:"sport"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	t := &model.Team{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Sport:     req.Sport,
		CaptainID: currentUser(c).ID,
		MemberIDs: []string{currentUser(c).ID},
	}
	s.state.teams[t.ID] = t
	return respond(c, http.StatusCreated, t)
}

func (s *Server) handleVenues(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	sport, city := c.QueryParam("sport"), c.QueryParam("city")
	out := []model.Venue{}
	for _, v := range s.state.venues {
		if sport != "" && v.Sport != sport {
			continue
		}
		if city != "" && v.City != city {
			continue
		}
		out = append(out, *v)
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleVenue(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	v, ok := s.state.venues[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}
	return respond(c, http.StatusOK, v)
}

func (s *Server) handleBookVenue(c echo.Context) error {
	var req dto.BookVenueRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	v, ok := s.state.venues[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}

	b := &model.Booking{
		ID:        uuid.NewString(),
		VenueID:   v.ID,
		UserID:    currentUser(c).ID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Amount:    v.PricePerHour,
		Status:    "confirmed",
		CreatedAt: time.Now(),
	}
	s.state.bookings[b.ID] = b
	return respond(c, http.StatusCreated, b)
}

func (s *Server) handleBookings(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []model.Booking{}
	for _, b := range s.state.bookings {
		out = append(out, *b)
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleMyBookings(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []model.Booking{}
	for _, b := range s.state.bookings {
		if b.UserID == currentUser(c).ID {
			out = append(out, *b)
		}
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleBanners(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []model.Banner{}
	for _, b := range s.state.banners {
		if b.IsActive {
			out = append(out, *b)
		}
	}
	return respond(c, http.StatusOK, out)
}

func (s *Server) handleBannerClick(c echo.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	b, ok := s.state.banners[c.Param("id")]
	if !ok {
		return fail(c, http.StatusNotFound, "")
	}
	b.Clicks++
	return respond(c, http.StatusOK, nil)
}
