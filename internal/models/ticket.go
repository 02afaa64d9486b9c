package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ticket struct {
	ID           int       `json:"id"`
	QRCode       string    `json:"qr_code"`
	UserID       int       `json:"user_id"`
	EventID      int       `json:"event_id"`
	TicketTypeID int       `json:"ticket_type_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Transaction is the financial record written together with its Ticket.
// Amounts and the commission rate are snapshots taken at purchase time
// and are never updated afterwards.
type Transaction struct {
	ID               int             `json:"id"`
	TicketID         int             `json:"ticket_id"`
	OrganizerID      int             `json:"organizer_id"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
	CreatedAt        time.Time       `json:"created_at"`
}
