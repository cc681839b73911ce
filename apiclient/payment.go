package apiclient

import (
	"context"
	"net/http"

	"ynot/models"
)

func (c *Client) CreatePaymentIntent(ctx context.Context, req models.CreatePaymentIntentRequest) (models.CreatePaymentIntentResponse, error) {
	return Do[models.CreatePaymentIntentResponse](ctx, c, Request{
		Method:   http.MethodPost,
		Endpoint: "/payment/create-intent",
		Body:     req,
	})
}

// ConfirmPayment records a paid intent as a reservation. idempotencyKey lets
// the backend recognise a retried confirmation.
func (c *Client) ConfirmPayment(ctx context.Context, req models.ConfirmPaymentRequest, idempotencyKey string) (models.Reservation, error) {
	r := Request{
		Method:   http.MethodPost,
		Endpoint: "/payment/confirm",
		Body:     req,
	}
	if idempotencyKey != "" {
		r.Header = http.Header{"Idempotency-Key": {idempotencyKey}}
	}
	return Do[models.Reservation](ctx, c, r)
}
