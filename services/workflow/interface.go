package workflow

import (
	"context"
	"time"

	"infinity8/models"
)

// AvailabilityService returns the hourly slot grid for one space on one
// date. The core API owns the computation; results are never cached here.
type AvailabilityService interface {
	DayAvailability(ctx context.Context, spaceID int64, date string) ([]models.TimeSlot, error)
}

// BookingService accepts a booking request. Conflict and pricing rules are
// enforced upstream; a decline comes back as a rejection with a
// user-facing message.
type BookingService interface {
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error)
}

// AuthState reports whether the current caller is authenticated. Handlers
// adapt the request principal into this; the controller never reads
// ambient globals.
type AuthState interface {
	Authenticated(ctx context.Context) bool
}

// Deps bundles the controller's collaborators.
type Deps struct {
	Availability AvailabilityService
	Booking      BookingService
	Auth         AuthState
}

// ContiguityPolicy decides how a selection with gaps between chosen hours
// is treated on submit.
type ContiguityPolicy string

const (
	// ContiguityAllowGaps derives the booking interval from the earliest
	// and latest chosen hours even when hours in between are unselected,
	// matching the historical behavior. The core API still applies its own
	// conflict rules to the resulting interval.
	ContiguityAllowGaps ContiguityPolicy = "allow_gaps"
	// ContiguityReject refuses gapped selections before any network call.
	ContiguityReject ContiguityPolicy = "reject"
)

// Options tune a controller instance.
type Options struct {
	Contiguity ContiguityPolicy
	// Clock supplies "now" for the past-date guard and the default date.
	Clock func() time.Time
}
