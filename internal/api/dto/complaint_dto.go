package dto

import (
	"time"

	"github.com/campus-kit/complaint-service/internal/domain"
)

// CreateComplaintRequest payload.
type CreateComplaintRequest struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Category    domain.ComplaintCategory `json:"category"`
	Priority    domain.ComplaintPriority `json:"priority"`
	Location    string                   `json:"location"`
	Deadline    *time.Time               `json:"deadline,omitempty"`
}

// UpdateStatusRequest payload for admin transitions.
type UpdateStatusRequest struct {
	Status domain.ComplaintStatus `json:"status"`
}

// DeadlineBucketResponse is the urgency classification of a deadline.
type DeadlineBucketResponse struct {
	Kind string `json:"kind"`
	Days int    `json:"days,omitempty"`
}

// ComplaintSummary response item for listings.
type ComplaintSummary struct {
	ID        string                   `json:"id"`
	AuthorID  string                   `json:"author_id"`
	Title     string                   `json:"title"`
	Category  domain.ComplaintCategory `json:"category"`
	Priority  domain.ComplaintPriority `json:"priority"`
	Status    domain.ComplaintStatus   `json:"status"`
	Location  string                   `json:"location,omitempty"`
	Deadline  *time.Time               `json:"deadline,omitempty"`
	Urgency   DeadlineBucketResponse   `json:"urgency"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// ComplaintDetailResponse provides full complaint info.
type ComplaintDetailResponse struct {
	ID          string                     `json:"id"`
	AuthorID    string                     `json:"author_id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Category    domain.ComplaintCategory   `json:"category"`
	Priority    domain.ComplaintPriority   `json:"priority"`
	Status      domain.ComplaintStatus     `json:"status"`
	Location    string                     `json:"location,omitempty"`
	Deadline    *time.Time                 `json:"deadline,omitempty"`
	Urgency     DeadlineBucketResponse     `json:"urgency"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
	History     []ComplaintHistoryResponse `json:"history"`
	NextActions []domain.ComplaintStatus   `json:"next_actions"`
}

// ComplaintHistoryResponse is an audit trail entry.
type ComplaintHistoryResponse struct {
	ID        string                 `json:"id"`
	ActorID   string                 `json:"actor_id"`
	OldStatus domain.ComplaintStatus `json:"old_status"`
	NewStatus domain.ComplaintStatus `json:"new_status"`
	CreatedAt time.Time              `json:"created_at"`
}

// DashboardResponse carries the summary counts for the caller's view.
type DashboardResponse struct {
	Total          int                            `json:"total"`
	ByStatus       map[domain.ComplaintStatus]int `json:"by_status"`
	HighPriority   int                            `json:"high_priority"`
	Overdue        int                            `json:"overdue"`
	ResolutionRate float64                        `json:"resolution_rate"`
}
