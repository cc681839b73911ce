package handlers

import (
	"context"
	"errors"
	"fmt"

	"ynot/models"
)

func (h *Handlers) VerifyEmail(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errors.New("verification token cannot be empty")
	}
	res, err := h.api.VerifyEmail(ctx, token)
	if err != nil {
		return "", fmt.Errorf("verify email: %w", err)
	}
	return res.Message, nil
}

// CurrentUser returns the logged in user after re-checking token expiry.
func (h *Handlers) CurrentUser(ctx context.Context) (models.User, error) {
	if err := h.requireAuth(ctx); err != nil {
		return models.User{}, err
	}
	u, ok := h.session.User()
	if !ok {
		return models.User{}, ErrNotAuthenticated
	}
	return u, nil
}
