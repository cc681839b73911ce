package handlers

import (
	"context"
	"strings"

	"ynot/models"
)

func (h *Handlers) Artists(ctx context.Context) ([]models.Artist, error) {
	return h.api.ListArtists(ctx)
}

func (h *Handlers) Artist(ctx context.Context, id int) (models.Artist, error) {
	return h.api.GetArtist(ctx, id)
}

// SearchArtists uses the AI search when ai is set and the plain search
// otherwise. A blank query returns an empty result without calling the API.
func (h *Handlers) SearchArtists(ctx context.Context, query string, ai bool) (models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.SearchResult{}, nil
	}
	if ai {
		return h.api.AISearch(ctx, query)
	}
	artists, err := h.api.SearchArtists(ctx, query)
	if err != nil {
		return models.SearchResult{}, err
	}
	return models.SearchResult{Results: artists, Count: len(artists), Query: query}, nil
}

func (h *Handlers) Concerts(ctx context.Context) ([]models.Concert, error) {
	return h.api.ListConcerts(ctx)
}

func (h *Handlers) SearchConcerts(ctx context.Context, query string) ([]models.Concert, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return h.api.ListConcerts(ctx)
	}
	return h.api.SearchConcerts(ctx, query)
}
