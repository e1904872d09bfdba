package ports

import (
	"context"

	"github.com/stpnv0/CafeBooker/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, r *domain.Reservation, by *domain.Requester)
}
