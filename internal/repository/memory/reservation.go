// Package memory is a process-local reservation store for development and tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stpnv0/CafeBooker/internal/service/ports"
)

type ReservationRepository struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Reservation
	byDate map[string]int // date -> booked terminals
	order  []string       // ids in insertion order
}

func NewReservationRepo() *ReservationRepository {
	return &ReservationRepository{
		byID:   make(map[string]*domain.Reservation),
		byDate: make(map[string]int),
	}
}

// Create holds the write lock across the demand check and the insert, so
// concurrent creates for one date cannot overbook it.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation, admit ports.AdmitFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := admit(r.byDate[res.Date]); err != nil {
		return err
	}

	stored := *res
	r.byID[stored.ID] = &stored
	r.byDate[stored.Date] += stored.TerminalsRequested
	r.order = append(r.order, stored.ID)

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	out := *res
	return &out, nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]*domain.Reservation, error) {
	return r.filter(ctx, func(*domain.Reservation) bool { return true })
}

func (r *ReservationRepository) ListByOwnerEmail(ctx context.Context, email string) ([]*domain.Reservation, error) {
	return r.filter(ctx, func(res *domain.Reservation) bool {
		return strings.EqualFold(res.OwnerEmail, email)
	})
}

func (r *ReservationRepository) filter(ctx context.Context, keep func(*domain.Reservation) bool) ([]*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Reservation, 0, len(r.order))
	for _, id := range r.order {
		res := r.byID[id]
		if keep(res) {
			cp := *res
			out = append(out, &cp)
		}
	}

	// stable: equal created_at keeps insertion order
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byID[id]
	if !ok {
		return domain.ErrReservationNotFound
	}

	delete(r.byID, id)
	r.byDate[res.Date] -= res.TerminalsRequested
	if r.byDate[res.Date] <= 0 {
		delete(r.byDate, res.Date)
	}
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *ReservationRepository) BookedTerminals(ctx context.Context, date string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byDate[date], nil
}
