package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Appointment represents a calendar slot in the salon schedule.
// A slot with IsAvailable = true is open for booking; a slot with
// IsAvailable = false is a booked appointment with populated client fields.
type Appointment struct {
	ID          int64
	Date        time.Time // calendar date, wall-clock, no time zone semantics
	StartTime   types.TimeString
	ClientName  *string
	ClientPhone *string
	ServiceName *string
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBooked returns true if the slot is taken by a client
func (a *Appointment) IsBooked() bool {
	return !a.IsAvailable
}

// BelongsTo reports whether the appointment belongs to the given identity.
// A name match (case-insensitive, trimmed) or a phone match (trimmed) is
// sufficient on its own. An empty identity matches nothing.
func (a *Appointment) BelongsTo(identity Identity) bool {
	if identity.IsEmpty() {
		return false
	}

	if identity.Name != nil && a.ClientName != nil {
		if equalFoldTrimmed(*a.ClientName, *identity.Name) {
			return true
		}
	}

	if identity.Phone != nil && a.ClientPhone != nil {
		if trimmed(*a.ClientPhone) == trimmed(*identity.Phone) {
			return true
		}
	}

	return false
}

// IsUpcoming reports whether the appointment date is today or later.
// The comparison is date-only; today must be truncated to midnight by the caller.
func (a *Appointment) IsUpcoming(today time.Time) bool {
	date := time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), 0, 0, 0, 0, today.Location())
	return !date.Before(today)
}

// StartsAt composes the full appointment timestamp from date and start time.
// A missing or malformed start time counts as midnight.
func (a *Appointment) StartsAt() time.Time {
	minutes := a.StartTime.Normalized().Minutes()
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), 0, 0, 0, 0, a.Date.Location()).
		Add(time.Duration(minutes) * time.Minute)
}

// DisplayTime returns the start time for display purposes.
// Unlike ordering, a missing time is never upgraded to "00:00" here.
func (a *Appointment) DisplayTime() string {
	if a.StartTime.IsZero() {
		return ""
	}
	return a.StartTime.Normalized().String()
}

// DisplayService returns the service name or an empty string
func (a *Appointment) DisplayService() string {
	if a.ServiceName == nil {
		return ""
	}
	return *a.ServiceName
}
