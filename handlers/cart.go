package handlers

import (
	"context"
	"fmt"
	"strconv"

	"ynot/models"
)

// AddToCart puts one ticket of the given type for concert into the cart.
func (h *Handlers) AddToCart(ctx context.Context, concert models.Concert, typ models.TicketType) error {
	if !typ.Valid() {
		return fmt.Errorf("unknown ticket type %q", typ)
	}
	return h.cart.AddItem(ctx, models.CartItem{
		ID:    strconv.Itoa(concert.ID),
		Title: concert.Title(),
		Price: concert.PriceFor(typ),
		Image: concert.Image(),
		Type:  typ,
	})
}

// AddConcertToCart looks the concert up by id and adds one ticket of it.
func (h *Handlers) AddConcertToCart(ctx context.Context, concertID int, typ models.TicketType) error {
	concerts, err := h.api.ListConcerts(ctx)
	if err != nil {
		return err
	}
	for _, c := range concerts {
		if c.ID == concertID {
			return h.AddToCart(ctx, c, typ)
		}
	}
	return fmt.Errorf("concert %d not found", concertID)
}

func (h *Handlers) RemoveFromCart(ctx context.Context, id string, typ models.TicketType) error {
	return h.cart.RemoveItem(ctx, id, typ)
}
