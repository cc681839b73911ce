package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ynot/models"
	"ynot/validators"
)

// PaymentConfirmer is the payment provider step: given the client secret of
// a payment intent, it collects the payment and returns the intent id.
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, clientSecret string, amount decimal.Decimal) (string, error)
}

type PaymentConfirmerFunc func(ctx context.Context, clientSecret string, amount decimal.Decimal) (string, error)

func (f PaymentConfirmerFunc) ConfirmPayment(ctx context.Context, clientSecret string, amount decimal.Decimal) (string, error) {
	return f(ctx, clientSecret, amount)
}

// CheckoutError reports the line that failed. PaymentIntentID is set when the
// provider accepted the payment but the backend did not record it; the line
// stays in the cart with the payment attached and the next Checkout only
// confirms it.
type CheckoutError struct {
	Item            models.CartItem
	PaymentIntentID string
	Err             error
}

func (e *CheckoutError) Error() string {
	if e.PaymentIntentID != "" {
		return fmt.Sprintf("checkout %s (%s): payment %s taken but not confirmed: %v", e.Item.Title, e.Item.Type, e.PaymentIntentID, e.Err)
	}
	return fmt.Sprintf("checkout %s (%s): %v", e.Item.Title, e.Item.Type, e.Err)
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// Checkout pays for every cart line in order. A line leaves the cart only
// once the backend has confirmed its reservation, so after a failure the
// cart holds exactly the lines still to pay and Checkout can be retried.
// A line the provider already charged is not charged again on retry: its
// recorded payment is confirmed with the same idempotency key.
func (h *Handlers) Checkout(ctx context.Context, pc PaymentConfirmer) ([]models.CheckoutLine, error) {
	if err := h.requireAuth(ctx); err != nil {
		return nil, err
	}
	items := h.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, it := range items {
		if err := validators.ValidateCartItem(it); err != nil {
			return nil, &CheckoutError{Item: it, Err: err}
		}
		if _, err := strconv.Atoi(it.ID); err != nil {
			return nil, &CheckoutError{Item: it, Err: fmt.Errorf("invalid concert id %q", it.ID)}
		}
	}

	done := make([]models.CheckoutLine, 0, len(items))
	for _, it := range items {
		line, err := h.checkoutLine(ctx, pc, it)
		if err != nil {
			return done, err
		}
		if err := h.cart.Settle(ctx, it.ID, it.Type, line.Item.Quantity); err != nil {
			h.log.Warn("failed to persist cart after checkout line", zap.String("concert_id", it.ID), zap.Error(err))
		}
		done = append(done, line)
	}
	return done, nil
}

func (h *Handlers) checkoutLine(ctx context.Context, pc PaymentConfirmer, it models.CartItem) (models.CheckoutLine, error) {
	concertID, _ := strconv.Atoi(it.ID)

	var paid models.PendingPayment
	if it.Pending != nil {
		paid = *it.Pending
		h.log.Info("resuming unconfirmed payment",
			zap.String("concert_id", it.ID),
			zap.String("payment_intent", paid.IntentID))
	} else {
		intent, err := h.api.CreatePaymentIntent(ctx, models.CreatePaymentIntentRequest{
			ConcertID:  concertID,
			TicketType: it.Type,
			Quantity:   it.Quantity,
		})
		if err != nil {
			return models.CheckoutLine{}, &CheckoutError{Item: it, Err: fmt.Errorf("create payment intent: %w", err)}
		}

		intentID, err := pc.ConfirmPayment(ctx, intent.ClientSecret, intent.Amount)
		if err != nil {
			return models.CheckoutLine{}, &CheckoutError{Item: it, Err: fmt.Errorf("payment: %w", err)}
		}
		if intentID == "" {
			return models.CheckoutLine{}, &CheckoutError{Item: it, Err: errors.New("payment: provider returned no payment intent id")}
		}

		paid = models.PendingPayment{IntentID: intentID, Quantity: it.Quantity}
		if err := h.cart.MarkPaid(ctx, it.ID, it.Type, paid); err != nil {
			h.log.Error("failed to record payment before confirmation",
				zap.String("concert_id", it.ID),
				zap.String("payment_intent", intentID),
				zap.Error(err))
		}
	}

	res, err := h.api.ConfirmPayment(ctx, models.ConfirmPaymentRequest{
		PaymentIntentID: paid.IntentID,
		ConcertID:       concertID,
		TicketType:      it.Type,
		Quantity:        paid.Quantity,
	}, idempotencyKey(paid.IntentID))
	if err != nil {
		return models.CheckoutLine{}, &CheckoutError{Item: it, PaymentIntentID: paid.IntentID, Err: fmt.Errorf("confirm payment: %w", err)}
	}

	it.Quantity = paid.Quantity
	it.Pending = nil
	h.log.Info("ticket reserved",
		zap.String("concert_id", it.ID),
		zap.String("ticket_type", string(it.Type)),
		zap.Int("quantity", paid.Quantity),
		zap.String("payment_intent", paid.IntentID))
	return models.CheckoutLine{Item: it, PaymentIntentID: paid.IntentID, Reservation: res}, nil
}
