package domain

import "time"

// ComplaintStatus enumerates lifecycle states for complaints.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusAssigned   ComplaintStatus = "assigned"
	StatusInProgress ComplaintStatus = "in-progress"
	StatusResolved   ComplaintStatus = "resolved"
)

// Valid reports whether the status is a known value.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// ComplaintPriority enumerates urgency levels chosen at submission.
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "low"
	PriorityMedium ComplaintPriority = "medium"
	PriorityHigh   ComplaintPriority = "high"
)

// Valid reports whether the priority is a known value.
func (p ComplaintPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ComplaintCategory enumerates the campus areas a complaint can target.
type ComplaintCategory string

const (
	CategoryInfrastructure ComplaintCategory = "infrastructure"
	CategoryAcademics      ComplaintCategory = "academics"
	CategoryFacilities     ComplaintCategory = "facilities"
	CategoryHostel         ComplaintCategory = "hostel"
	CategoryOthers         ComplaintCategory = "others"
)

// Valid reports whether the category is a known value.
func (c ComplaintCategory) Valid() bool {
	switch c {
	case CategoryInfrastructure, CategoryAcademics, CategoryFacilities, CategoryHostel, CategoryOthers:
		return true
	}
	return false
}

// Complaint is the aggregate for filed issue reports. Records are never
// deleted; StatusResolved is terminal and the row persists for audit.
type Complaint struct {
	ID          string
	AuthorID    string
	Title       string
	Description string
	Category    ComplaintCategory
	Priority    ComplaintPriority
	Status      ComplaintStatus
	Location    string
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// statusGraph is the canonical lifecycle. Transitions are monotonic: no
// regression and no skipped edges (pending cannot jump straight to resolved).
var statusGraph = map[ComplaintStatus][]ComplaintStatus{
	StatusPending:    {StatusAssigned, StatusInProgress},
	StatusAssigned:   {StatusInProgress},
	StatusInProgress: {StatusResolved},
	StatusResolved:   {},
}

// CanTransition reports whether next is a direct successor of current.
func CanTransition(current, next ComplaintStatus) bool {
	for _, candidate := range statusGraph[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable in one step from current.
func NextStatuses(current ComplaintStatus) []ComplaintStatus {
	successors := statusGraph[current]
	out := make([]ComplaintStatus, len(successors))
	copy(out, successors)
	return out
}
