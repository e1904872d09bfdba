package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/stpnv0/CafeBooker/internal/auth"
	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stpnv0/CafeBooker/internal/handler/dto"
	"github.com/stpnv0/CafeBooker/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type AvailabilitySvc interface {
	Get(ctx context.Context, date string) (*domain.Availability, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, requester *domain.Requester, input domain.CreateReservationInput) (*domain.CreateResult, error)
	List(ctx context.Context, requester *domain.Requester, mineOnly bool) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, requester *domain.Requester, id string) error
	CancelWindowSeconds(res *domain.Reservation) int
}

type Handler struct {
	availabilityService AvailabilitySvc
	reservationService  ReservationSvc
}

func NewHandler(availabilityService AvailabilitySvc, reservationService ReservationSvc) *Handler {
	return &Handler{
		availabilityService: availabilityService,
		reservationService:  reservationService,
	}
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	var q dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	a, err := h.availabilityService.Get(c.Request.Context(), q.Date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(a))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	requester := auth.FromContext(c.Request.Context())
	if requester == nil {
		metrics.ObserveBooking("create", outcome(domain.ErrUnauthenticated))
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ObserveBooking("create", "bad_request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	input := domain.CreateReservationInput{
		Date:               req.Date,
		DurationDays:       req.Days,
		TerminalsRequested: req.ComputersBooked,
		SessionStart:       req.SessionStart,
		SessionEnd:         req.SessionEnd,
		IdempotencyKey:     c.GetHeader(IdempotencyKeyHeader),
	}

	result, err := h.reservationService.Create(c.Request.Context(), requester, input)
	if err != nil {
		metrics.ObserveBooking("create", outcome(err))
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
		metrics.ObserveBooking("create", "replayed")
	} else {
		metrics.ObserveBooking("create", "success")
	}

	c.JSON(status, dto.CreateBookingResponse{
		Message: "Booking successful!",
		Booking: dto.ToBookingResponse(result.Reservation, h.reservationService.CancelWindowSeconds(result.Reservation)),
	})
}

func (h *Handler) ListBookings(c *ginext.Context) {
	var q dto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "scope must be one of: all, mine"})
		return
	}

	requester := auth.FromContext(c.Request.Context())
	list, err := h.reservationService.List(c.Request.Context(), requester, q.Scope == "mine")
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ListBookingsResponse{Bookings: make([]dto.BookingResponse, 0, len(list))}
	for _, r := range list {
		resp.Bookings = append(resp.Bookings, dto.ToBookingResponse(r, h.reservationService.CancelWindowSeconds(r)))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	var q dto.CancelBookingQuery
	_ = c.ShouldBindQuery(&q)
	if q.ID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Booking ID is required"})
		return
	}

	requester := auth.FromContext(c.Request.Context())
	if err := h.reservationService.Cancel(c.Request.Context(), requester, q.ID); err != nil {
		metrics.ObserveBooking("cancel", outcome(err))
		h.handleError(c, err)
		return
	}

	metrics.ObserveBooking("cancel", "success")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Booking deleted successfully!"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var vErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error()})

	case errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrReservationNotFound.Error()})

	case errors.Is(err, domain.ErrCancellationWindowClosed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.ErrCancellationWindowClosed.Error()})

	case errors.Is(err, domain.ErrRequestInProgress):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.ErrRequestInProgress.Error()})

	case errors.As(err, &vErr):
		resp := dto.ErrorResponse{Error: vErr.Message, Reason: string(vErr.Reason)}
		if vErr.Reason == domain.ReasonInsufficientCapacity {
			available := vErr.Available
			resp.Available = &available
		}
		status := http.StatusBadRequest
		if vErr.CapacityRelated() {
			status = http.StatusConflict
		}
		c.JSON(status, resp)

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func outcome(err error) string {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return string(vErr.Reason)
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrReservationNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrCancellationWindowClosed):
		return "window_closed"
	case errors.Is(err, domain.ErrRequestInProgress):
		return "in_progress"
	default:
		return "error"
	}
}
