package dto

import (
	"time"

	"github.com/stpnv0/CafeBooker/internal/domain"
)

type AvailabilityResponse struct {
	Date           string `json:"date"`
	TotalBooked    int    `json:"totalBooked"`
	Available      int    `json:"available"`
	TotalComputers int    `json:"totalComputers"`
}

type BookingResponse struct {
	ID                  string `json:"id"`
	Date                string `json:"date"`
	Days                int    `json:"days"`
	ComputersBooked     int    `json:"computersBooked"`
	SessionStart        string `json:"sessionStart"`
	SessionEnd          string `json:"sessionEnd"`
	UserID              string `json:"userId"`
	UserName            string `json:"userName"`
	UserEmail           string `json:"userEmail"`
	CreatedAt           string `json:"createdAt"`
	CancelWindowSeconds int    `json:"cancelWindowSeconds"`
}

type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Reason    string `json:"reason,omitempty"`
	Available *int   `json:"available,omitempty"`
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		Date:           a.Date,
		TotalBooked:    a.TotalBooked,
		Available:      a.Available,
		TotalComputers: a.TotalComputers,
	}
}

func ToBookingResponse(r *domain.Reservation, cancelWindowSeconds int) BookingResponse {
	return BookingResponse{
		ID:                  r.ID,
		Date:                r.Date,
		Days:                r.DurationDays,
		ComputersBooked:     r.TerminalsRequested,
		SessionStart:        r.SessionStart,
		SessionEnd:          r.SessionEnd,
		UserID:              r.OwnerID,
		UserName:            r.OwnerName,
		UserEmail:           r.OwnerEmail,
		CreatedAt:           r.CreatedAt.Format(time.RFC3339),
		CancelWindowSeconds: cancelWindowSeconds,
	}
}
