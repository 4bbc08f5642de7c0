package model

import "time"

type Tournament struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Sport       string    `json:"sport"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	EntryFee    float64   `json:"entryFee"`
	MaxTeams    int       `json:"maxTeams"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	OrganizerID string    `json:"organizerId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Sport     string   `json:"sport"`
	CaptainID string   `json:"captainId"`
	MemberIDs []string `json:"memberIds"`
}

type Coach struct {
	ID         string   `json:"id"`
	UserID     string   `json:"userId"`
	Name       string   `json:"name"`
	Sports     []string `json:"sports"`
	HourlyRate float64  `json:"hourlyRate"`
	City       string   `json:"city"`
	Rating     float64  `json:"rating"`
	Approved   bool     `json:"approved"`
	Available  bool     `json:"available"`
}

type Venue struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Sport        string   `json:"sport"`
	City         string   `json:"city"`
	Address      string   `json:"address"`
	PricePerHour float64  `json:"pricePerHour"`
	Amenities    []string `json:"amenities,omitempty"`
	Rating       float64  `json:"rating"`
}

type Booking struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venueId"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"` // YYYY-MM-DD
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
