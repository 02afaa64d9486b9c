// Package pricing computes the commission-based fees charged on top of a
// ticket's net price. All math runs on decimals at full precision; only
// buyer-facing amounts are rounded, to 2 places.
package pricing

import "github.com/shopspring/decimal"

// Quote is the buyer-facing breakdown of a single ticket price.
type Quote struct {
	Net        decimal.Decimal
	ServiceFee decimal.Decimal
	Gross      decimal.Decimal
}

// NewQuote applies the organizer's commission rate to a net price.
//
// The fee is rounded before the gross is summed, so
// Gross = Net + ServiceFee holds exactly on the rounded values.
func NewQuote(net, rate decimal.Decimal) Quote {
	fee := net.Mul(rate).Round(2)

	return Quote{
		Net:        net.Round(2),
		ServiceFee: fee,
		Gross:      net.Round(2).Add(fee),
	}
}
