// Package handlers implements the user-facing flows of the ticketing client:
// each method reacts to one user action by combining the local stores with
// calls to the backend.
package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ynot/apiclient"
	"ynot/cart"
	"ynot/favorites"
	"ynot/session"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("admin role required")
	ErrEmptyCart        = errors.New("cart is empty")
)

type Handlers struct {
	api       *apiclient.Client
	session   *session.Store
	cart      *cart.Store
	favorites *favorites.Store
	log       *zap.Logger
}

func New(api *apiclient.Client, sess *session.Store, c *cart.Store, favs *favorites.Store, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{
		api:       api,
		session:   sess,
		cart:      c,
		favorites: favs,
		log:       log,
	}
}

func (h *Handlers) requireAuth(ctx context.Context) error {
	if !h.session.CheckAuth(ctx) {
		return ErrNotAuthenticated
	}
	return nil
}

// idempotencyKey is stable for a payment intent so a retried confirmation
// reuses the key of the first attempt.
func idempotencyKey(paymentIntentID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("ynot:payment:"+paymentIntentID)).String()
}
