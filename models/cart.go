package models

import "github.com/shopspring/decimal"

type TicketType string

const (
	TicketStandard TicketType = "standard"
	TicketVIP      TicketType = "vip"
)

func (t TicketType) Valid() bool {
	return t == TicketStandard || t == TicketVIP
}

// CartItem is one line of the cart. Two items are the same line when both
// ID and Type match.
type CartItem struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image"`
	Type     TicketType      `json:"type"`

	// Pending is set once the provider has taken payment for the line and
	// the backend has not yet confirmed it.
	Pending *PendingPayment `json:"pending,omitempty"`
}

// PendingPayment is a provider payment waiting for backend confirmation.
// Quantity is the number of tickets the payment covers.
type PendingPayment struct {
	IntentID string `json:"intent_id"`
	Quantity int    `json:"quantity"`
}

// Subtotal is price times quantity.
func (c CartItem) Subtotal() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
