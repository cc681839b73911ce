package handlers

import (
	"context"
	"errors"
	"fmt"

	"ynot/validators"
)

func (h *Handlers) ForgotPassword(ctx context.Context, email string) (string, error) {
	if err := validators.ValidateEmail(email); err != nil {
		return "", err
	}
	res, err := h.api.ForgotPassword(ctx, email)
	if err != nil {
		return "", fmt.Errorf("forgot password: %w", err)
	}
	return res.Message, nil
}

func (h *Handlers) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	if token == "" {
		return "", errors.New("reset token cannot be empty")
	}
	if err := validators.ValidatePassword(newPassword); err != nil {
		return "", err
	}
	res, err := h.api.ResetPassword(ctx, token, newPassword)
	if err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}
	return res.Message, nil
}
