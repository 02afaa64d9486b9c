package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleAdmin    = "admin"
	RoleBusiness = "business"
	RoleEndUser  = "end_user"
)

type User struct {
	ID             int             `json:"id"`
	Email          string          `json:"email"`
	PasswordHash   string          `json:"-"`
	Role           string          `json:"role"`
	CommissionRate decimal.Decimal `json:"-"`
	FirstName      string          `json:"first_name,omitempty"`
	LastName       string          `json:"last_name,omitempty"`
	PhoneNumber    string          `json:"phone_number,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
