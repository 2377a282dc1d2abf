package models

import "time"

// Booking statuses mirror the core API.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking is a booking record as served by the core API.
type Booking struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	SpaceID    int64     `json:"space_id"`
	StartTime  string    `json:"start_time"` // ISO-8601 local timestamp
	EndTime    string    `json:"end_time"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	Space      *Space    `json:"space,omitempty"`
	User       *User     `json:"user,omitempty"`
}

// BookingInput is the create payload sent to the core API. The core API is
// authoritative for conflicts and final pricing.
type BookingInput struct {
	SpaceID   int64  `json:"space_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes,omitempty"`
}

// BookingFilter narrows a bookings listing.
type BookingFilter struct {
	Status       string
	UpcomingOnly bool
}

// AdminBookingFilter narrows the admin booking listing.
type AdminBookingFilter struct {
	Status   string
	SpaceID  int64
	UserID   int64
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}
