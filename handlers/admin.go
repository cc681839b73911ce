package handlers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"ynot/models"
)

// AdminOverview loads the dashboard statistics, users and payments in
// parallel. The first failure cancels the other requests.
func (h *Handlers) AdminOverview(ctx context.Context) (models.AdminOverview, error) {
	if err := h.requireAuth(ctx); err != nil {
		return models.AdminOverview{}, err
	}
	if u, _ := h.session.User(); !u.IsAdmin() {
		return models.AdminOverview{}, ErrForbidden
	}

	var out models.AdminOverview
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		stats, err := h.api.AdminDashboard(ctx)
		out.Stats = stats
		return err
	})
	eg.Go(func() error {
		users, err := h.api.AdminListUsers(ctx)
		out.Users = users
		return err
	})
	eg.Go(func() error {
		payments, err := h.api.AdminListPayments(ctx)
		out.Payments = payments
		return err
	})
	if err := eg.Wait(); err != nil {
		return models.AdminOverview{}, err
	}
	return out, nil
}
