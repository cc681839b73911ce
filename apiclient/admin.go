package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"ynot/models"
)

func (c *Client) AdminDashboard(ctx context.Context) (models.DashboardStats, error) {
	return Do[models.DashboardStats](ctx, c, Request{Method: http.MethodGet, Endpoint: "/admin/dashboard"})
}

func (c *Client) AdminListArtists(ctx context.Context) ([]models.AdminArtist, error) {
	return Do[[]models.AdminArtist](ctx, c, Request{Method: http.MethodGet, Endpoint: "/admin/artists"})
}

func (c *Client) AdminCreateArtist(ctx context.Context, a models.AdminArtist) (models.AdminArtist, error) {
	return Do[models.AdminArtist](ctx, c, Request{Method: http.MethodPost, Endpoint: "/admin/artists", Body: a})
}

func (c *Client) AdminUpdateArtist(ctx context.Context, a models.AdminArtist) (models.AdminArtist, error) {
	return Do[models.AdminArtist](ctx, c, Request{
		Method:   http.MethodPut,
		Endpoint: "/admin/artists/" + strconv.Itoa(a.ID),
		Body:     a,
	})
}

func (c *Client) AdminDeleteArtist(ctx context.Context, id int) error {
	return c.adminDelete(ctx, "/admin/artists/"+strconv.Itoa(id))
}

func (c *Client) AdminListConcerts(ctx context.Context) ([]models.AdminConcert, error) {
	return Do[[]models.AdminConcert](ctx, c, Request{Method: http.MethodGet, Endpoint: "/admin/concerts"})
}

func (c *Client) AdminCreateConcert(ctx context.Context, cc models.AdminConcert) (models.AdminConcert, error) {
	return Do[models.AdminConcert](ctx, c, Request{Method: http.MethodPost, Endpoint: "/admin/concerts", Body: cc})
}

func (c *Client) AdminUpdateConcert(ctx context.Context, cc models.AdminConcert) (models.AdminConcert, error) {
	return Do[models.AdminConcert](ctx, c, Request{
		Method:   http.MethodPut,
		Endpoint: "/admin/concerts/" + strconv.Itoa(cc.ID),
		Body:     cc,
	})
}

func (c *Client) AdminDeleteConcert(ctx context.Context, id int) error {
	return c.adminDelete(ctx, "/admin/concerts/"+strconv.Itoa(id))
}

func (c *Client) AdminListUsers(ctx context.Context) ([]models.AdminUser, error) {
	return Do[[]models.AdminUser](ctx, c, Request{Method: http.MethodGet, Endpoint: "/admin/users"})
}

func (c *Client) AdminDeleteUser(ctx context.Context, id int) error {
	return c.adminDelete(ctx, "/admin/users/"+strconv.Itoa(id))
}

func (c *Client) AdminListPayments(ctx context.Context) ([]models.AdminPayment, error) {
	return Do[[]models.AdminPayment](ctx, c, Request{Method: http.MethodGet, Endpoint: "/admin/payments"})
}

func (c *Client) adminDelete(ctx context.Context, endpoint string) error {
	_, err := Do[json.RawMessage](ctx, c, Request{Method: http.MethodDelete, Endpoint: endpoint})
	return err
}
