package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campus-kit/complaint-service/internal/domain"
)

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func deadlineIn(days int) *time.Time {
	d := testNow.AddDate(0, 0, days)
	return &d
}

func TestClassifyDeadline_NilDeadlineIsNone(t *testing.T) {
	bucket := domain.ClassifyDeadline(nil, testNow)

	assert.Equal(t, domain.DeadlineNone, bucket.Kind)
	assert.Zero(t, bucket.Days)
}

func TestClassifyDeadline_SameInstantIsDueToday(t *testing.T) {
	bucket := domain.ClassifyDeadline(&testNow, testNow)

	assert.Equal(t, domain.DeadlineDueToday, bucket.Kind)
}

func TestClassifyDeadline_PartialDayPastStillDueToday(t *testing.T) {
	// twelve hours past rounds up toward the deadline, not into overdue
	d := testNow.Add(-12 * time.Hour)
	bucket := domain.ClassifyDeadline(&d, testNow)

	assert.Equal(t, domain.DeadlineDueToday, bucket.Kind)
}

func TestClassifyDeadline_FiveDaysPastIsOverdueFive(t *testing.T) {
	bucket := domain.ClassifyDeadline(deadlineIn(-5), testNow)

	assert.Equal(t, domain.DeadlineOverdue, bucket.Kind)
	assert.Equal(t, 5, bucket.Days)
}

func TestClassifyDeadline_BucketBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		deadline *time.Time
		kind     domain.DeadlineBucketKind
		days     int
	}{
		{"one day left is urgent", deadlineIn(1), domain.DeadlineUrgent, 1},
		{"three days left is urgent", deadlineIn(3), domain.DeadlineUrgent, 3},
		{"four days left is soon", deadlineIn(4), domain.DeadlineSoon, 4},
		{"seven days left is soon", deadlineIn(7), domain.DeadlineSoon, 7},
		{"eight days left is normal", deadlineIn(8), domain.DeadlineNormal, 8},
		{"one day past is overdue", deadlineIn(-1), domain.DeadlineOverdue, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bucket := domain.ClassifyDeadline(tc.deadline, testNow)
			assert.Equal(t, tc.kind, bucket.Kind)
			assert.Equal(t, tc.days, bucket.Days)
		})
	}
}

func TestClassifyDeadline_PartialDayLeftCountsAsFullDay(t *testing.T) {
	// six hours from now is still a day away in calendar terms
	d := testNow.Add(6 * time.Hour)
	bucket := domain.ClassifyDeadline(&d, testNow)

	assert.Equal(t, domain.DeadlineUrgent, bucket.Kind)
	assert.Equal(t, 1, bucket.Days)
}

func TestClassifyDeadline_Deterministic(t *testing.T) {
	d := deadlineIn(2)

	first := domain.ClassifyDeadline(d, testNow)
	second := domain.ClassifyDeadline(d, testNow)

	assert.Equal(t, first, second)
}
