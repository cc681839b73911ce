package handlers

import (
	"context"
	"fmt"
	"net/http"

	"ynot/apiclient"
)

// ToggleFavorite flips artistID on the server first and mirrors the result
// locally. It reports whether the artist is now a favorite.
func (h *Handlers) ToggleFavorite(ctx context.Context, artistID int) (bool, error) {
	if err := h.requireAuth(ctx); err != nil {
		return false, err
	}

	if h.favorites.IsFavorite(artistID) {
		err := h.api.RemoveFavorite(ctx, artistID)
		if err != nil && !apiclient.StatusIs(err, http.StatusNotFound) {
			return true, fmt.Errorf("remove favorite: %w", err)
		}
		return false, h.favorites.Remove(ctx, artistID)
	}

	_, err := h.api.AddFavorite(ctx, artistID)
	if err != nil && !apiclient.StatusIs(err, http.StatusConflict) {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return true, h.favorites.Add(ctx, artistID)
}

// SyncFavorites replaces the local favorites with the server's list.
func (h *Handlers) SyncFavorites(ctx context.Context) ([]int, error) {
	if err := h.requireAuth(ctx); err != nil {
		return nil, err
	}
	favs, err := h.api.ListFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	ids := make([]int, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.ArtistID)
	}
	if err := h.favorites.Replace(ctx, ids); err != nil {
		return nil, err
	}
	return h.favorites.List(), nil
}
