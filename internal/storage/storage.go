package storage

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"eventix/internal/models"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrCapacityExhausted  = errors.New("ticket type is sold out")
)

// NewUser carries the fields accepted at registration. Role is assigned
// by the server, never by the caller.
type NewUser struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	PhoneNumber  string
	DateOfBirth  string
}

// NewEvent is an event plus its ticket types, persisted as one unit.
type NewEvent struct {
	Name        string
	Description string
	EventDate   time.Time
	Location    string
	Category    string
	TicketTypes []TicketTypeSpec
}

type TicketTypeSpec struct {
	Name     string
	Price    decimal.Decimal
	Capacity int
}

// EventDetail is what the catalog needs to price an event's tickets:
// the event, its organizer's contact, and the organizer's current
// commission rate.
type EventDetail struct {
	Event          models.Event
	OrganizerEmail string
	CommissionRate decimal.Decimal
	TicketTypes    []models.TicketType
}

// Purchase is the ticket/transaction pair created by a single buy.
type Purchase struct {
	Ticket      models.Ticket
	Transaction models.Transaction
}
