package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stpnv0/CafeBooker/internal/service/ports"
)

type AvailabilityService struct {
	repo     ports.ReservationRepo
	capacity int
}

func NewAvailabilityService(repo ports.ReservationRepo, capacity int) *AvailabilityService {
	return &AvailabilityService{
		repo:     repo,
		capacity: capacity,
	}
}

// Get sums the terminals booked for date. The date is not validated: an
// unknown or malformed date simply has no demand.
func (s *AvailabilityService) Get(ctx context.Context, date string) (*domain.Availability, error) {
	booked, err := s.repo.BookedTerminals(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("booked terminals: %w", err)
	}

	a := s.Balance(date, booked)
	return &a, nil
}

func (s *AvailabilityService) Balance(date string, booked int) domain.Availability {
	return domain.Availability{
		Date:           date,
		TotalBooked:    booked,
		Available:      s.capacity - booked,
		TotalComputers: s.capacity,
	}
}
