package ports

import (
	"context"

	"github.com/stpnv0/CafeBooker/internal/domain"
)

// AdmitFunc decides whether a reservation may be stored given the number of
// terminals already booked for its date. Stores call it while holding the
// per-date serialization, so booked is not stale.
type AdmitFunc func(booked int) error

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation, admit AdmitFunc) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	ListByOwnerEmail(ctx context.Context, email string) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
	BookedTerminals(ctx context.Context, date string) (int, error)
}
