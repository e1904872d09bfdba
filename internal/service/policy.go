package service

import (
	"fmt"
	"time"

	"github.com/stpnv0/CafeBooker/internal/domain"
)

const (
	DefaultCapacity    = 50
	DefaultMaxDays     = 10
	DefaultMinSession  = 30 * time.Minute
	DefaultMaxSession  = 12 * time.Hour
	DefaultGraceWindow = 5 * time.Minute
)

// Policy holds the business limits applied to booking requests.
type Policy struct {
	Capacity    int
	MaxDays     int
	MinSession  time.Duration
	MaxSession  time.Duration
	GraceWindow time.Duration
	// Location defines where a calendar day starts and ends.
	Location *time.Location
}

func DefaultPolicy() Policy {
	return Policy{
		Capacity:    DefaultCapacity,
		MaxDays:     DefaultMaxDays,
		MinSession:  DefaultMinSession,
		MaxSession:  DefaultMaxSession,
		GraceWindow: DefaultGraceWindow,
		Location:    time.Local,
	}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// validate runs the request rules that do not depend on stored data.
// The first failing rule wins.
func (p Policy) validate(in domain.CreateReservationInput, now time.Time) error {
	if in.Date == "" {
		return domain.NewValidationError(domain.ReasonInvalidDate, "Please select a date.")
	}

	loc := p.location()
	selected, err := time.ParseInLocation(domain.DateLayout, in.Date, loc)
	if err != nil {
		return domain.NewValidationError(domain.ReasonInvalidDate, "Invalid date, expected YYYY-MM-DD.")
	}

	y, m, d := now.In(loc).Date()
	if selected.Before(time.Date(y, m, d, 0, 0, 0, 0, loc)) {
		return domain.NewValidationError(domain.ReasonInvalidDate, "Selected date cannot be in the past.")
	}

	if in.DurationDays < 1 || in.DurationDays > p.MaxDays {
		return domain.NewValidationError(domain.ReasonInvalidDuration,
			"Days must be between 1 and %d.", p.MaxDays)
	}

	if in.TerminalsRequested < 1 {
		return domain.NewValidationError(domain.ReasonInvalidCount, "You must book at least 1 computer.")
	}

	if in.SessionStart == "" || in.SessionEnd == "" {
		return domain.NewValidationError(domain.ReasonMissingSessionTimes,
			"Please select session start and end time.")
	}

	start, errStart := time.Parse(domain.TimeLayout, in.SessionStart)
	end, errEnd := time.Parse(domain.TimeLayout, in.SessionEnd)
	if errStart != nil || errEnd != nil {
		return domain.NewValidationError(domain.ReasonMissingSessionTimes,
			"Session times must be in HH:MM format.")
	}

	if !end.After(start) {
		return domain.NewValidationError(domain.ReasonInvalidSessionOrder, "End time must be after start time.")
	}

	length := end.Sub(start)
	if length < p.MinSession {
		return domain.NewValidationError(domain.ReasonSessionTooShort,
			"Session must be at least %s.", humanSpan(p.MinSession))
	}
	if length > p.MaxSession {
		return domain.NewValidationError(domain.ReasonSessionTooLong,
			"Session cannot exceed %s.", humanSpan(p.MaxSession))
	}

	return nil
}

// admit applies the capacity rule to the current balance of the date.
func admit(a domain.Availability, requested int) error {
	if a.FullyBooked() {
		return domain.NewValidationError(domain.ReasonDateFullyBooked, "No computers available on this date.")
	}
	if requested > a.Available {
		vErr := domain.NewValidationError(domain.ReasonInsufficientCapacity,
			"Only %d computers available.", a.Available)
		vErr.Available = a.Available
		return vErr
	}
	return nil
}

// clockTime brings an already validated time of day to HH:MM ("9:05" -> "09:05").
func clockTime(raw string) string {
	t, err := time.Parse(domain.TimeLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format(domain.TimeLayout)
}

func humanSpan(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		return fmt.Sprintf("%d hours", int(d/time.Hour))
	}
	return fmt.Sprintf("%d minutes", int(d/time.Minute))
}
