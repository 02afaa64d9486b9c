package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventStatusScheduled = "scheduled"
	EventStatusCompleted = "completed"
)

type Event struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	OrganizerID int       `json:"organizer_id"`
	Status      string    `json:"status"`
}

type TicketType struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Capacity int             `json:"capacity"`
	EventID  int             `json:"event_id"`
}
