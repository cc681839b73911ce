package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"ynot/config"
	"ynot/handlers"
	"ynot/logger"
	"ynot/models"
)

type appKey struct{}

func appFrom(cmd *cobra.Command) *app {
	return cmd.Context().Value(appKey{}).(*app)
}

func newRootCmd() *cobra.Command {
	var (
		apiURL, logLevel string
		current          *app
	)
	cobra.OnFinalize(func() {
		if current != nil {
			_ = current.close()
		}
	})

	root := &cobra.Command{
		Use:          "ynot",
		Short:        "Command line client for the YNOT ticketing API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			current = a
			ctx = logger.ToContext(ctx, a.log.Sugar())
			if err := a.restore(ctx); err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(ctx, appKey{}, a))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides API_URL)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newRegisterCmd(),
		newForgotPasswordCmd(),
		newResetPasswordCmd(),
		newVerifyEmailCmd(),
		newStatusCmd(),
		newArtistsCmd(),
		newConcertsCmd(),
		newCartCmd(),
		newFavoritesCmd(),
		newAdminCmd(),
	)
	return root
}

func newLoginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			u, err := a.h.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if _, err := a.h.SyncFavorites(cmd.Context()); err != nil {
				logger.Errorf(cmd.Context(), "sync favorites after login: %v", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", u.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := appFrom(cmd).h.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newRegisterCmd() *cobra.Command {
	var req models.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := appFrom(cmd).h.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	return cmd
}

func newForgotPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password <email>",
		Short: "Ask for a password reset link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := appFrom(cmd).h.ForgotPassword(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newResetPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <token> <new-password>",
		Short: "Set a new password from a reset token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := appFrom(cmd).h.ResetPassword(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newVerifyEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-email <token>",
		Short: "Confirm an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := appFrom(cmd).h.VerifyEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session, cart and favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			out := cmd.OutOrStdout()
			u, err := a.h.CurrentUser(cmd.Context())
			switch {
			case errors.Is(err, handlers.ErrNotAuthenticated):
				fmt.Fprintln(out, "not logged in")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "logged in as %s (%s)\n", u.Email, u.Role)
			}
			fmt.Fprintf(out, "cart: %d line(s), total %s\n", a.cart.Len(), a.cart.Total().StringFixed(2))
			fmt.Fprintf(out, "favorites: %d\n", len(a.favorites.List()))
			return nil
		},
	}
}

func newArtistsCmd() *cobra.Command {
	var ai bool
	cmd := &cobra.Command{
		Use:   "artists [query]",
		Short: "List or search artists",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			var artists []models.Artist
			if len(args) == 0 {
				list, err := a.h.Artists(cmd.Context())
				if err != nil {
					return err
				}
				artists = list
			} else {
				res, err := a.h.SearchArtists(cmd.Context(), args[0], ai)
				if err != nil {
					return err
				}
				artists = res.Results
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tCREATED\tFAVORITE")
			for _, ar := range artists {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%t\n", ar.ID, ar.Name, ar.CreationDate, a.favorites.IsFavorite(ar.ID))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&ai, "ai", false, "use the AI search")
	return cmd
}

func newConcertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concerts [query]",
		Short: "List or search concerts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			concerts, err := appFrom(cmd).h.SearchConcerts(cmd.Context(), query)
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tCONCERT\tDATE\tSTANDARD\tVIP")
			for _, c := range concerts {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Title(), c.Date.Format("2006-01-02"),
					c.PriceFor(models.TicketStandard).StringFixed(2), c.PriceFor(models.TicketVIP).StringFixed(2))
			}
			return tw.Flush()
		},
	}
}

func newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the ticket cart",
	}

	ticketType := func(vip bool) models.TicketType {
		if vip {
			return models.TicketVIP
		}
		return models.TicketStandard
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tQTY\tPRICE\tSUBTOTAL")
			for _, it := range a.cart.Items() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n", it.ID, it.Title, it.Type, it.Quantity,
					it.Price.StringFixed(2), it.Subtotal().StringFixed(2))
			}
			fmt.Fprintf(tw, "\t\t\t\tTOTAL\t%s\n", a.cart.Total().StringFixed(2))
			return tw.Flush()
		},
	}

	var addVIP bool
	add := &cobra.Command{
		Use:   "add <concert-id>",
		Short: "Add one ticket for a concert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid concert id %q", args[0])
			}
			return appFrom(cmd).h.AddConcertToCart(cmd.Context(), id, ticketType(addVIP))
		},
	}
	add.Flags().BoolVar(&addVIP, "vip", false, "VIP ticket")

	var removeVIP bool
	remove := &cobra.Command{
		Use:   "remove <concert-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFrom(cmd).h.RemoveFromCart(cmd.Context(), args[0], ticketType(removeVIP))
		},
	}
	remove.Flags().BoolVar(&removeVIP, "vip", false, "VIP line")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return appFrom(cmd).cart.ClearCart(cmd.Context())
		},
	}

	checkout := &cobra.Command{
		Use:   "checkout",
		Short: "Pay for every cart line",
		Long:  "Prints the amount and client secret of each line and reads back the payment intent id.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			pc := newPromptConfirmer(cmd.InOrStdin(), out)
			lines, err := appFrom(cmd).h.Checkout(cmd.Context(), pc)
			for _, l := range lines {
				fmt.Fprintf(out, "reserved %d x %s (%s), reservation %d\n",
					l.Item.Quantity, l.Item.Title, l.Item.Type, l.Reservation.ID)
			}
			return err
		},
	}

	cmd.AddCommand(list, add, remove, clearCmd, checkout)
	return cmd
}

func newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite artists",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List favorite artist ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, id := range appFrom(cmd).favorites.List() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <artist-id>",
		Short: "Add or remove a favorite artist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid artist id %q", args[0])
			}
			on, err := appFrom(cmd).h.ToggleFavorite(cmd.Context(), id)
			if err != nil {
				return err
			}
			if on {
				fmt.Fprintf(cmd.OutOrStdout(), "artist %d added to favorites\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "artist %d removed from favorites\n", id)
			}
			return nil
		},
	}

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Reload favorites from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := appFrom(cmd).h.SyncFavorites(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d favorite(s)\n", len(ids))
			return nil
		},
	}

	cmd.AddCommand(list, toggle, syncCmd)
	return cmd
}

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin dashboard",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "overview",
		Short: "Show dashboard stats, users and payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ov, err := appFrom(cmd).h.AdminOverview(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "artists: %d  concerts: %d  users: %d  upcoming: %d\n",
				ov.Stats.TotalArtists, ov.Stats.TotalConcerts, ov.Stats.TotalUsers, ov.Stats.UpcomingConcerts)
			fmt.Fprintf(out, "revenue: %s  recent bookings: %d\n", ov.Stats.TotalRevenue.StringFixed(2), ov.Stats.RecentBookings)
			fmt.Fprintf(out, "users listed: %d  payments listed: %d\n", len(ov.Users), len(ov.Payments))
			return nil
		},
	})
	return cmd
}

// promptConfirmer asks the user to complete each payment out of band and
// reads back the payment intent id.
type promptConfirmer struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPromptConfirmer(in io.Reader, out io.Writer) *promptConfirmer {
	return &promptConfirmer{in: bufio.NewScanner(in), out: out}
}

func (p *promptConfirmer) ConfirmPayment(ctx context.Context, clientSecret string, amount decimal.Decimal) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprintf(p.out, "pay %s using client secret %s\npayment intent id: ", amount.StringFixed(2), clientSecret)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
