package domain

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Reservation is a booking of shared terminals for a calendar day.
// Owner fields are a snapshot of the requester taken at creation time.
type Reservation struct {
	ID                 string    `json:"id"`
	Date               string    `json:"date"`
	DurationDays       int       `json:"duration_days"`
	TerminalsRequested int       `json:"terminals_requested"`
	SessionStart       string    `json:"session_start"`
	SessionEnd         string    `json:"session_end"`
	OwnerID            string    `json:"owner_id"`
	OwnerName          string    `json:"owner_name"`
	OwnerEmail         string    `json:"owner_email"`
	CreatedAt          time.Time `json:"created_at"`
}

// CancelWindowSeconds returns the whole seconds left for the owner to cancel,
// counting elapsed time in whole seconds. Zero means the window is closed.
func (r *Reservation) CancelWindowSeconds(now time.Time, window time.Duration) int {
	left := int(window/time.Second) - int(now.Sub(r.CreatedAt)/time.Second)
	if left < 0 {
		return 0
	}
	return left
}

type CreateReservationInput struct {
	Date               string
	DurationDays       int
	TerminalsRequested int
	SessionStart       string
	SessionEnd         string
	// IdempotencyKey is optional; repeated creates with the same key by the
	// same requester return the first reservation.
	IdempotencyKey string
}

type CreateResult struct {
	Reservation *Reservation
	Replayed    bool
}

// Availability is the terminal balance for one calendar day.
// Available may be negative when demand already exceeds capacity.
type Availability struct {
	Date           string `json:"date"`
	TotalBooked    int    `json:"total_booked"`
	Available      int    `json:"available"`
	TotalComputers int    `json:"total_computers"`
}

func (a Availability) FullyBooked() bool {
	return a.Available <= 0
}
