package dto

// CreateBookingRequest carries no binding rules: every field is checked by the
// service in a fixed order so the client always gets the first failing rule.
type CreateBookingRequest struct {
	Date            string `json:"date"`
	Days            int    `json:"days"`
	ComputersBooked int    `json:"computersBooked"`
	SessionStart    string `json:"sessionStart"`
	SessionEnd      string `json:"sessionEnd"`
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required"`
}

type ListBookingsQuery struct {
	Scope string `form:"scope" binding:"omitempty,oneof=all mine"`
}

type CancelBookingQuery struct {
	ID string `form:"id"`
}
