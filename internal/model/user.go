package model

import "time"

type Role string

const (
	RolePlayer   Role = "player"
	RoleCoach    Role = "coach"
	RoleStore    Role = "store"
	RoleDelivery Role = "delivery"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}
