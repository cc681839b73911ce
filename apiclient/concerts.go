package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"ynot/models"
)

func (c *Client) ListConcerts(ctx context.Context) ([]models.Concert, error) {
	return Do[[]models.Concert](ctx, c, Request{Method: http.MethodGet, Endpoint: "/concerts"})
}

func (c *Client) SearchConcerts(ctx context.Context, query string) ([]models.Concert, error) {
	return Do[[]models.Concert](ctx, c, Request{
		Method:   http.MethodGet,
		Endpoint: "/concerts/search",
		Query:    url.Values{"q": {query}},
	})
}
