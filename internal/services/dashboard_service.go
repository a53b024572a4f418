package services

import (
	"passgate-backend/internal/booking"
)

type DashboardService struct {
	Bookings  BookingService
	RequestID string
}

// Stats aggregates the bookings matching f into dashboard numbers.
// With an all-sentinel filter this is the whole-event summary.
func (s DashboardService) Stats(f booking.FilterSpec) (booking.Summary, error) {
	list, err := s.Bookings.List(f)
	if err != nil {
		return booking.Summary{}, err
	}
	return booking.Summarize(list), nil
}
