package domain

import "time"

// Summary holds dashboard counts derived from a complaint set.
type Summary struct {
	Total          int
	ByStatus       map[ComplaintStatus]int
	HighPriority   int
	Overdue        int
	ResolutionRate float64
}

// Summarize derives dashboard counts from complaints relative to now. A
// complaint counts as overdue only while its deadline bucket is overdue and
// it is not yet resolved. ResolutionRate is 0 for an empty input.
func Summarize(complaints []Complaint, now time.Time) Summary {
	summary := Summary{
		ByStatus: map[ComplaintStatus]int{
			StatusPending:    0,
			StatusAssigned:   0,
			StatusInProgress: 0,
			StatusResolved:   0,
		},
	}

	for _, c := range complaints {
		summary.Total++
		summary.ByStatus[c.Status]++
		if c.Priority == PriorityHigh {
			summary.HighPriority++
		}
		if c.Status != StatusResolved && ClassifyDeadline(c.Deadline, now).Kind == DeadlineOverdue {
			summary.Overdue++
		}
	}

	if summary.Total > 0 {
		summary.ResolutionRate = float64(summary.ByStatus[StatusResolved]) / float64(summary.Total)
	}
	return summary
}
