// Package bookings fronts the core API's booking management endpoints and
// keeps a per-user cached view of the bookings list so the dashboard can
// render instantly between mutations.
package bookings

import (
	"context"

	"infinity8/gateway"
	"infinity8/models"
)

type Service struct {
	api   gateway.BookingsAPI
	views ViewStore
}

func NewService(api gateway.BookingsAPI, views ViewStore) *Service {
	return &Service{api: api, views: views}
}

// Mine lists the caller's bookings. An unfiltered listing is served from
// the cached view when present; filtered listings always hit the core API.
func (s *Service) Mine(ctx context.Context, userID int64, filter models.BookingFilter) ([]models.Booking, error) {
	unfiltered := filter.Status == "" && !filter.UpcomingOnly

	if unfiltered && s.views != nil {
		if view, ok := s.views.Load(ctx, userID); ok {
			return view, nil
		}
	}

	bookings, err := s.api.Mine(ctx, filter)
	if err != nil {
		return nil, err
	}
	if unfiltered && s.views != nil {
		s.views.Save(ctx, userID, bookings)
	}
	return bookings, nil
}

// Get fetches a single booking.
func (s *Service) Get(ctx context.Context, id int64) (*models.Booking, error) {
	return s.api.Get(ctx, id)
}

// Cancel cancels a booking. The cached view is updated optimistically so a
// reload right after the click shows the booking as cancelled; if the core
// API refuses, the prior view is restored and the error surfaces.
func (s *Service) Cancel(ctx context.Context, userID, bookingID int64) error {
	var prior []models.Booking
	hadView := false
	if s.views != nil {
		prior, hadView = s.views.Load(ctx, userID)
	}
	if hadView {
		tentative := make([]models.Booking, len(prior))
		copy(tentative, prior)
		for i := range tentative {
			if tentative[i].ID == bookingID {
				tentative[i].Status = models.BookingStatusCancelled
			}
		}
		s.views.Save(ctx, userID, tentative)
	}

	if err := s.api.Cancel(ctx, bookingID); err != nil {
		if hadView {
			s.views.Save(ctx, userID, prior)
		}
		return err
	}
	return nil
}

// InvalidateView drops the caller's cached bookings list. Called after a
// new booking is created so the next listing is fresh.
func (s *Service) InvalidateView(ctx context.Context, userID int64) {
	if s.views == nil {
		return
	}
	s.views.Delete(ctx, userID)
}
