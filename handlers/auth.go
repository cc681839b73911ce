package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ynot/models"
	"ynot/validators"
)

func (h *Handlers) Login(ctx context.Context, email, password string) (models.User, error) {
	creds := models.Credentials{Email: email, Password: password}
	if err := validators.ValidateCredentials(creds); err != nil {
		return models.User{}, err
	}
	res, err := h.api.Login(ctx, creds)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}
	if res.Token == "" {
		return models.User{}, fmt.Errorf("login: backend returned no token")
	}
	if err := h.session.Login(ctx, res.Token, res.User); err != nil {
		return res.User, err
	}
	return res.User, nil
}

func (h *Handlers) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	if err := validators.ValidateRegistration(req); err != nil {
		return "", err
	}
	res, err := h.api.Register(ctx, req)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	h.log.Info("registered", zap.String("email", req.Email))
	return res.Message, nil
}

// Logout ends the session and forgets the user's favorites. The cart is kept.
func (h *Handlers) Logout(ctx context.Context) error {
	if err := h.session.Logout(ctx); err != nil {
		return err
	}
	return h.favorites.Clear(ctx)
}

func (h *Handlers) GoogleAuthURL(ctx context.Context) (string, error) {
	u, err := h.api.GoogleAuthURL(ctx)
	if err != nil {
		return "", fmt.Errorf("google auth: %w", err)
	}
	if u == "" {
		return "", fmt.Errorf("google auth: backend returned no url")
	}
	return u, nil
}
