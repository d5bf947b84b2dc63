package domain

import "time"

// ComplaintHistory is an immutable audit trail entry recorded for every
// status change applied through the lifecycle.
type ComplaintHistory struct {
	ID          string
	ComplaintID string
	ActorID     string
	OldStatus   ComplaintStatus
	NewStatus   ComplaintStatus
	CreatedAt   time.Time
}
