package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ynot/models"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "fan@ynot.fr", creds.Email)
		_, _ = io.WriteString(w, `{"token":"t0k","user":{"id":4,"email":"fan@ynot.fr","first_name":"Ana","last_name":"B","role":"user","email_verified":true}}`)
	})

	res, err := c.Login(context.Background(), models.Credentials{Email: "fan@ynot.fr", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "t0k", res.Token)
	assert.Equal(t, 4, res.User.ID)
	assert.True(t, res.User.EmailVerified)
	assert.False(t, res.User.IsAdmin())
}

func TestConcerts_DecodePrices(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/concerts/search", r.URL.Path)
		assert.Equal(t, "paris", r.URL.Query().Get("q"))
		_, _ = io.WriteString(w, `[{"id":7,"artist_name":"Justice","location":"Paris","date":"2026-11-02T20:00:00Z","price":45,"standard_price":45,"vip_price":95.5,"available_tickets":100}]`)
	})

	concerts, err := c.SearchConcerts(context.Background(), "paris")
	require.NoError(t, err)
	require.Len(t, concerts, 1)
	assert.True(t, concerts[0].PriceFor(models.TicketVIP).Equal(decimal.RequireFromString("95.5")))
	assert.True(t, concerts[0].PriceFor(models.TicketStandard).Equal(decimal.NewFromInt(45)))
	assert.Equal(t, "Justice - Paris", concerts[0].Title())
}

func TestConfirmPayment_IdempotencyKey(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payment/confirm", r.URL.Path)
		assert.Equal(t, "line-1", r.Header.Get("Idempotency-Key"))
		_, _ = io.WriteString(w, `{"id":12,"concert_id":7,"ticket_type":"vip","quantity":2,"total_price":191,"status":"confirmed"}`)
	})

	res, err := c.ConfirmPayment(context.Background(), models.ConfirmPaymentRequest{
		PaymentIntentID: "pi_1",
		ConcertID:       7,
		TicketType:      models.TicketVIP,
		Quantity:        2,
	}, "line-1")
	require.NoError(t, err)
	assert.Equal(t, 12, res.ID)
	assert.Equal(t, models.TicketVIP, res.TicketType)
}

func TestAISearch_MarksResults(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req models.SearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "french house", req.Query)
		_, _ = io.WriteString(w, `{"results":[{"id":1,"name":"Daft Punk"}],"count":1,"query":"french house"}`)
	})

	res, err := c.AISearch(context.Background(), "french house")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.True(t, res.AIPowered)
}

func TestAdminDelete(t *testing.T) {
	t.Parallel()

	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		paths = append(paths, r.URL.Path)
		_, _ = io.WriteString(w, `{"message":"deleted"}`)
	})

	ctx := context.Background()
	require.NoError(t, c.AdminDeleteArtist(ctx, 1))
	require.NoError(t, c.AdminDeleteConcert(ctx, 2))
	require.NoError(t, c.AdminDeleteUser(ctx, 3))
	assert.Equal(t, []string{"/api/admin/artists/1", "/api/admin/concerts/2", "/api/admin/users/3"}, paths)
}

func TestGoogleAuthURL(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"url":"https://accounts.google.com/o/oauth2/auth?x=1"}`)
	})

	u, err := c.GoogleAuthURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?x=1", u)
}
