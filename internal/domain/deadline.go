package domain

import (
	"math"
	"time"
)

// DeadlineBucketKind discretizes how close a deadline is.
type DeadlineBucketKind string

const (
	DeadlineNone     DeadlineBucketKind = "none"
	DeadlineOverdue  DeadlineBucketKind = "overdue"
	DeadlineDueToday DeadlineBucketKind = "due-today"
	DeadlineUrgent   DeadlineBucketKind = "urgent"
	DeadlineSoon     DeadlineBucketKind = "soon"
	DeadlineNormal   DeadlineBucketKind = "normal"
)

// DeadlineBucket is the urgency classification of an optional deadline.
// Days is the count of days past for overdue, days left otherwise; it is
// zero for the none and due-today kinds.
type DeadlineBucket struct {
	Kind DeadlineBucketKind
	Days int
}

// ClassifyDeadline derives the urgency bucket for a deadline relative to
// now. Day difference uses ceil so any partial day still counts toward the
// deadline. Callers must inject now; the function never reads the clock.
func ClassifyDeadline(deadline *time.Time, now time.Time) DeadlineBucket {
	if deadline == nil {
		return DeadlineBucket{Kind: DeadlineNone}
	}

	daysDiff := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	switch {
	case daysDiff < 0:
		return DeadlineBucket{Kind: DeadlineOverdue, Days: -daysDiff}
	case daysDiff == 0:
		return DeadlineBucket{Kind: DeadlineDueToday}
	case daysDiff <= 3:
		return DeadlineBucket{Kind: DeadlineUrgent, Days: daysDiff}
	case daysDiff <= 7:
		return DeadlineBucket{Kind: DeadlineSoon, Days: daysDiff}
	default:
		return DeadlineBucket{Kind: DeadlineNormal, Days: daysDiff}
	}
}
