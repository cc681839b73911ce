package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Concert struct {
	ID                int             `json:"id"`
	Name              string          `json:"name,omitempty"`
	ArtistID          int             `json:"artist_id"`
	ArtistName        string          `json:"artist_name,omitempty"`
	ArtistImage       string          `json:"artist_image,omitempty"`
	Venue             string          `json:"venue,omitempty"`
	Location          string          `json:"location"`
	City              string          `json:"city,omitempty"`
	Date              time.Time       `json:"date"`
	ImageURL          string          `json:"image_url,omitempty"`
	Price             decimal.Decimal `json:"price"`
	StandardPrice     decimal.Decimal `json:"standard_price"`
	VIPPrice          decimal.Decimal `json:"vip_price"`
	AvailableTickets  int             `json:"available_tickets"`
	AvailableStandard int             `json:"available_standard,omitempty"`
	AvailableVIP      int             `json:"available_vip,omitempty"`
}

// PriceFor returns the ticket price for the given type. Concerts without a
// dedicated standard price fall back to Price.
func (c Concert) PriceFor(t TicketType) decimal.Decimal {
	if t == TicketVIP && !c.VIPPrice.IsZero() {
		return c.VIPPrice
	}
	if !c.StandardPrice.IsZero() {
		return c.StandardPrice
	}
	return c.Price
}

// Title is the display name used for cart lines.
func (c Concert) Title() string {
	switch {
	case c.Name != "":
		return c.Name
	case c.ArtistName != "" && c.Location != "":
		return c.ArtistName + " - " + c.Location
	case c.ArtistName != "":
		return c.ArtistName
	default:
		return c.Location
	}
}

// Image prefers the concert artwork over the artist picture.
func (c Concert) Image() string {
	if c.ImageURL != "" {
		return c.ImageURL
	}
	return c.ArtistImage
}
