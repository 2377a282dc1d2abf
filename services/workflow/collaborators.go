package workflow

import (
	"context"

	"infinity8/gateway"
	"infinity8/models"
)

// gatewayAvailability adapts the spaces client into the controller's
// availability collaborator.
type gatewayAvailability struct {
	spaces gateway.SpacesAPI
}

func (g *gatewayAvailability) DayAvailability(ctx context.Context, spaceID int64, date string) ([]models.TimeSlot, error) {
	availability, err := g.spaces.Availability(ctx, spaceID, date)
	if err != nil {
		return nil, err
	}
	return availability.AvailableSlots, nil
}

// gatewayBooking adapts the bookings client into the controller's booking
// collaborator.
type gatewayBooking struct {
	bookings gateway.BookingsAPI
}

func (g *gatewayBooking) CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	return g.bookings.Create(ctx, input)
}

// NewGatewayDeps wires the controller against the core API clients. The
// caller's token rides the request context, so one Deps value serves every
// request.
func NewGatewayDeps(spaces gateway.SpacesAPI, bookings gateway.BookingsAPI, auth AuthState) Deps {
	return Deps{
		Availability: &gatewayAvailability{spaces: spaces},
		Booking:      &gatewayBooking{bookings: bookings},
		Auth:         auth,
	}
}
