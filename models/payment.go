package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePaymentIntentRequest struct {
	ConcertID  int        `json:"concert_id"`
	TicketType TicketType `json:"ticket_type"`
	Quantity   int        `json:"quantity"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret string          `json:"client_secret"`
	Amount       decimal.Decimal `json:"amount"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string     `json:"payment_intent_id"`
	ConcertID       int        `json:"concert_id"`
	TicketType      TicketType `json:"ticket_type"`
	Quantity        int        `json:"quantity"`
}

type Reservation struct {
	ID            int             `json:"id"`
	UserID        int             `json:"user_id"`
	ConcertID     int             `json:"concert_id"`
	ConcertName   string          `json:"concert_name,omitempty"`
	TicketType    TicketType      `json:"ticket_type"`
	Quantity      int             `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CheckoutLine reports the outcome of paying for one cart line.
type CheckoutLine struct {
	Item            CartItem
	PaymentIntentID string
	Reservation     Reservation
}
