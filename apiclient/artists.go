package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"ynot/models"
)

func (c *Client) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return Do[[]models.Artist](ctx, c, Request{Method: http.MethodGet, Endpoint: "/artists"})
}

func (c *Client) GetArtist(ctx context.Context, id int) (models.Artist, error) {
	return Do[models.Artist](ctx, c, Request{Method: http.MethodGet, Endpoint: "/artists/" + strconv.Itoa(id)})
}

func (c *Client) SearchArtists(ctx context.Context, query string) ([]models.Artist, error) {
	return Do[[]models.Artist](ctx, c, Request{
		Method:   http.MethodGet,
		Endpoint: "/artists/search",
		Query:    url.Values{"q": {query}},
	})
}

// AISearch runs the backend's natural-language artist search.
func (c *Client) AISearch(ctx context.Context, query string) (models.SearchResult, error) {
	res, err := Do[models.SearchResult](ctx, c, Request{
		Method:   http.MethodPost,
		Endpoint: "/ai/search",
		Body:     models.SearchRequest{Query: query},
	})
	if err != nil {
		return res, err
	}
	res.AIPowered = true
	return res, nil
}

func (c *Client) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	return Do[[]models.Favorite](ctx, c, Request{Method: http.MethodGet, Endpoint: "/favorites"})
}

func (c *Client) AddFavorite(ctx context.Context, artistID int) (models.Favorite, error) {
	return Do[models.Favorite](ctx, c, Request{
		Method:   http.MethodPost,
		Endpoint: "/favorites",
		Body:     models.AddFavoriteRequest{ArtistID: artistID},
	})
}

func (c *Client) RemoveFavorite(ctx context.Context, artistID int) error {
	_, err := Do[json.RawMessage](ctx, c, Request{Method: http.MethodDelete, Endpoint: "/favorites/" + strconv.Itoa(artistID)})
	return err
}
