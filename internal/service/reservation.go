package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stpnv0/CafeBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type balancer interface {
	Balance(date string, booked int) domain.Availability
}

type ReservationService struct {
	repo         ports.ReservationRepo
	availability balancer
	idempotency  ports.IdempotencyStore
	notifier     ports.ReservationNotifier
	clock        ports.Clock
	policy       Policy
	logger       logger.Logger
}

func NewReservationService(
	repo ports.ReservationRepo,
	availability *AvailabilityService,
	idempotency ports.IdempotencyStore,
	notifier ports.ReservationNotifier,
	clock ports.Clock,
	policy Policy,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		repo:         repo,
		availability: availability,
		idempotency:  idempotency,
		notifier:     notifier,
		clock:        clock,
		policy:       policy,
		logger:       logger,
	}
}

func (s *ReservationService) Create(
	ctx context.Context,
	requester *domain.Requester,
	input domain.CreateReservationInput,
) (result *domain.CreateResult, err error) {
	if requester == nil {
		return nil, domain.ErrUnauthenticated
	}

	if input.IdempotencyKey != "" && s.idempotency != nil {
		key := requester.Email + ":" + input.IdempotencyKey

		replayed, claimErr := s.claimIdempotencyKey(ctx, key)
		if claimErr != nil {
			return nil, claimErr
		}
		if replayed != nil {
			return &domain.CreateResult{Reservation: replayed, Replayed: true}, nil
		}

		defer func() {
			s.settleIdempotencyKey(context.WithoutCancel(ctx), key, result, err)
		}()
	}

	res, err := s.create(ctx, requester, input)
	if err != nil {
		return nil, err
	}

	return &domain.CreateResult{Reservation: res}, nil
}

func (s *ReservationService) create(
	ctx context.Context,
	requester *domain.Requester,
	input domain.CreateReservationInput,
) (*domain.Reservation, error) {
	now := s.clock.Now()
	if err := s.policy.validate(input, now); err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		ID:                 uuid.New().String(),
		Date:               input.Date,
		DurationDays:       input.DurationDays,
		TerminalsRequested: input.TerminalsRequested,
		SessionStart:       clockTime(input.SessionStart),
		SessionEnd:         clockTime(input.SessionEnd),
		OwnerID:            requester.ID,
		OwnerName:          requester.Name,
		OwnerEmail:         requester.Email,
		CreatedAt:          now.UTC(),
	}

	admitFn := func(booked int) error {
		return admit(s.availability.Balance(res.Date, booked), res.TerminalsRequested)
	}
	if err := s.repo.Create(ctx, res, admitFn); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", res.ID),
		logger.String("date", res.Date),
		logger.Int("terminals", res.TerminalsRequested),
		logger.String("owner_email", res.OwnerEmail),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), res)

	return res, nil
}

// claimIdempotencyKey holds key for a new create, or returns the reservation
// an earlier request with the same key produced.
func (s *ReservationService) claimIdempotencyKey(ctx context.Context, key string) (*domain.Reservation, error) {
	existingID, err := s.idempotency.Reserve(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reserve idempotency key: %w", err)
	}
	if existingID == "" {
		return nil, nil
	}

	res, err := s.repo.GetByID(ctx, existingID)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, domain.ErrReservationNotFound) {
		return nil, fmt.Errorf("load replayed booking: %w", err)
	}

	// бронь по ключу уже отменена, ключ освобождаем и создаем заново
	staleID := existingID
	if err = s.idempotency.Release(ctx, key); err != nil {
		return nil, fmt.Errorf("release stale idempotency key: %w", err)
	}
	existingID, err = s.idempotency.Reserve(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reserve idempotency key: %w", err)
	}
	if existingID != "" {
		// параллельный запрос успел создать бронь
		res, err = s.repo.GetByID(ctx, existingID)
		if err != nil {
			return nil, fmt.Errorf("load replayed booking: %w", err)
		}
		return res, nil
	}

	s.logger.Info("stale idempotency key released",
		logger.String("idempotency_key", key),
		logger.String("cancelled_booking_id", staleID),
	)
	return nil, nil
}

func (s *ReservationService) settleIdempotencyKey(ctx context.Context, key string, result *domain.CreateResult, err error) {
	if err != nil || result == nil {
		if relErr := s.idempotency.Release(ctx, key); relErr != nil {
			s.logger.Error("failed to release idempotency key",
				logger.String("error", relErr.Error()),
			)
		}
		return
	}

	if compErr := s.idempotency.Complete(ctx, key, result.Reservation.ID); compErr != nil {
		s.logger.Error("failed to complete idempotency key",
			logger.String("booking_id", result.Reservation.ID),
			logger.String("error", compErr.Error()),
		)
	}
}

// List returns reservations newest first. Administrators see everything
// unless mineOnly is set; everyone else sees only their own.
func (s *ReservationService) List(ctx context.Context, requester *domain.Requester, mineOnly bool) ([]*domain.Reservation, error) {
	if requester == nil {
		return nil, domain.ErrUnauthenticated
	}

	if requester.IsAdmin() && !mineOnly {
		list, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list bookings: %w", err)
		}
		return list, nil
	}

	list, err := s.repo.ListByOwnerEmail(ctx, requester.Email)
	if err != nil {
		return nil, fmt.Errorf("list bookings by owner: %w", err)
	}
	return list, nil
}

// Cancel permanently removes a reservation. Owners may cancel only inside the
// grace window; administrators may cancel at any time.
func (s *ReservationService) Cancel(ctx context.Context, requester *domain.Requester, id string) error {
	if requester == nil {
		return domain.ErrUnauthenticated
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if !requester.IsAdmin() {
		if !requester.Owns(res) {
			return domain.ErrForbidden
		}
		if s.CancelWindowSeconds(res) <= 0 {
			return domain.ErrCancellationWindowClosed
		}
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", res.ID),
		logger.String("date", res.Date),
		logger.Int("terminals", res.TerminalsRequested),
		logger.String("cancelled_by", requester.Email),
		logger.String("role", string(requester.Role)),
	)

	go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), res, requester)

	return nil
}

func (s *ReservationService) CancelWindowSeconds(res *domain.Reservation) int {
	return res.CancelWindowSeconds(s.clock.Now(), s.policy.GraceWindow)
}
