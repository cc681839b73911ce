package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PopularArtist struct {
	ArtistName    string          `json:"artist_name"`
	ArtistImage   string          `json:"artist_image"`
	TotalBookings int             `json:"total_bookings"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

type DashboardStats struct {
	TotalArtists     int              `json:"total_artists"`
	TotalConcerts    int              `json:"total_concerts"`
	TotalUsers       int              `json:"total_users"`
	TotalRevenue     decimal.Decimal  `json:"total_revenue"`
	RecentBookings   int              `json:"recent_bookings"`
	UpcomingConcerts int              `json:"upcoming_concerts"`
	PopularArtists   []PopularArtist  `json:"popular_artists"`
	RevenueByMonth   []MonthlyRevenue `json:"revenue_by_month"`
	BookingsByStatus map[string]int   `json:"bookings_by_status"`
}

// AdminArtist is the admin API's artist shape, which uses snake_case keys
// unlike the public listing.
type AdminArtist struct {
	ID           int      `json:"id,omitempty"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Members      []string `json:"members"`
	CreationDate int      `json:"creation_date"`
	FirstAlbum   string   `json:"first_album"`
}

type AdminConcert struct {
	ID               int             `json:"id,omitempty"`
	ArtistID         int             `json:"artist_id"`
	ArtistName       string          `json:"artist_name,omitempty"`
	ArtistImage      string          `json:"artist_image,omitempty"`
	Location         string          `json:"location"`
	Date             time.Time       `json:"date"`
	AvailableTickets int             `json:"available_tickets"`
	Price            decimal.Decimal `json:"price"`
}

type AdminUser struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	IsAdmin       bool      `json:"is_admin"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	TotalBookings int       `json:"total_bookings"`
}

type AdminPayment struct {
	ID              int             `json:"id"`
	UserName        string          `json:"user_name"`
	UserEmail       string          `json:"user_email"`
	ArtistName      string          `json:"artist_name"`
	ConcertLocation string          `json:"concert_location"`
	ConcertDate     time.Time       `json:"concert_date"`
	Tickets         int             `json:"tickets"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	PaymentStatus   string          `json:"payment_status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AdminOverview bundles the reads behind the admin dashboard screen.
type AdminOverview struct {
	Stats    DashboardStats
	Users    []AdminUser
	Payments []AdminPayment
}
