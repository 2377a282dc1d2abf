package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"infinity8/models"
)

// BookingsAPI is the core API surface for booking creation and management.
type BookingsAPI interface {
	Create(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	Mine(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	Get(ctx context.Context, id int64) (*models.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

// BookingsClient implements BookingsAPI against the core API.
type BookingsClient struct {
	*Client
}

func NewBookingsClient(c *Client) *BookingsClient {
	return &BookingsClient{Client: c}
}

func (b *BookingsClient) Create(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	var booking models.Booking
	if err := b.do(ctx, http.MethodPost, "/bookings", nil, input, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (b *BookingsClient) Mine(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.UpcomingOnly {
		query.Set("upcoming_only", "true")
	}

	var bookings []models.Booking
	if err := b.do(ctx, http.MethodGet, "/bookings/me", query, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *BookingsClient) Get(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	if err := b.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", id), nil, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (b *BookingsClient) Cancel(ctx context.Context, id int64) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil, nil, nil)
}

// AdminAPI is the core API surface behind the admin dashboard.
type AdminAPI interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	Bookings(ctx context.Context, filter models.AdminBookingFilter) ([]models.Booking, error)
	Users(ctx context.Context, role string, limit, offset int) ([]models.User, error)
	UpdateUserRole(ctx context.Context, userID int64, role string) error
}

// AdminClient implements AdminAPI against the core API.
type AdminClient struct {
	*Client
}

func NewAdminClient(c *Client) *AdminClient {
	return &AdminClient{Client: c}
}

func (a *AdminClient) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := a.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (a *AdminClient) Bookings(ctx context.Context, filter models.AdminBookingFilter) ([]models.Booking, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.SpaceID > 0 {
		query.Set("space_id", strconv.FormatInt(filter.SpaceID, 10))
	}
	if filter.UserID > 0 {
		query.Set("user_id", strconv.FormatInt(filter.UserID, 10))
	}
	if filter.DateFrom != "" {
		query.Set("date_from", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query.Set("date_to", filter.DateTo)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}

	var bookings []models.Booking
	if err := a.do(ctx, http.MethodGet, "/admin/bookings", query, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (a *AdminClient) Users(ctx context.Context, role string, limit, offset int) ([]models.User, error) {
	query := url.Values{}
	if role != "" {
		query.Set("role", role)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var users []models.User
	if err := a.do(ctx, http.MethodGet, "/admin/users", query, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *AdminClient) UpdateUserRole(ctx context.Context, userID int64, role string) error {
	query := url.Values{}
	query.Set("role", role)
	return a.do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/role", userID), query, nil, nil)
}
