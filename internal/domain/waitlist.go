package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// WaitlistEntry is a client waiting for a freed slot or service.
// Slot entries carry Date + StartTime, service entries carry ServiceName.
// The two audiences are disjoint: an entry targets either a slot or a service.
type WaitlistEntry struct {
	ID          int64
	ClientName  string
	ClientPhone string
	Date        *time.Time
	StartTime   *types.TimeString
	ServiceName *string
	CreatedAt   time.Time
}

// IsSlotEntry returns true if the entry waits for an exact date/time slot
func (e *WaitlistEntry) IsSlotEntry() bool {
	return e.Date != nil && e.StartTime != nil
}

// IsServiceEntry returns true if the entry waits for a service on any date
func (e *WaitlistEntry) IsServiceEntry() bool {
	return e.ServiceName != nil
}
