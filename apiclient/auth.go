package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"ynot/models"
)

func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	return Do[models.AuthResponse](ctx, c, Request{Method: http.MethodPost, Endpoint: "/auth/login", Body: creds})
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error) {
	return Do[models.MessageResponse](ctx, c, Request{Method: http.MethodPost, Endpoint: "/auth/register", Body: req})
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (models.MessageResponse, error) {
	return Do[models.MessageResponse](ctx, c, Request{
		Method:   http.MethodPost,
		Endpoint: "/auth/forgot-password",
		Body:     models.ForgotPasswordRequest{Email: email},
	})
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (models.MessageResponse, error) {
	return Do[models.MessageResponse](ctx, c, Request{
		Method:   http.MethodPost,
		Endpoint: "/auth/reset-password",
		Body:     models.ResetPasswordRequest{Token: token, NewPassword: newPassword},
	})
}

func (c *Client) VerifyEmail(ctx context.Context, token string) (models.MessageResponse, error) {
	return Do[models.MessageResponse](ctx, c, Request{
		Method:   http.MethodGet,
		Endpoint: "/auth/verify-email",
		Query:    url.Values{"token": {token}},
	})
}

// GoogleAuthURL returns the provider URL the user must visit to sign in with
// Google. The backend finishes the OAuth exchange itself.
func (c *Client) GoogleAuthURL(ctx context.Context) (string, error) {
	res, err := Do[models.GoogleAuthResponse](ctx, c, Request{Method: http.MethodGet, Endpoint: "/auth/google"})
	if err != nil {
		return "", err
	}
	return res.URL, nil
}
