package models

import "time"

// User roles mirror the core API.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the application user record resolved from the core API. The
// identity provider owns credentials; the core API owns the profile.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// DashboardStats is the admin dashboard summary from the core API.
type DashboardStats struct {
	TotalSpaces       int     `json:"total_spaces"`
	TotalUsers        int     `json:"total_users"`
	BookingsToday     int     `json:"bookings_today"`
	RevenueThisMonth  float64 `json:"revenue_this_month"`
	BookingsLast7Days int     `json:"bookings_last_7_days"`
}
