package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campus-kit/complaint-service/internal/domain"
)

func TestSummarize_EmptyInputHasZeroRate(t *testing.T) {
	summary := domain.Summarize(nil, testNow)

	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.ResolutionRate)
	assert.Zero(t, summary.Overdue)
}

func TestSummarize_CountsByStatusAndPriority(t *testing.T) {
	complaints := []domain.Complaint{
		{Status: domain.StatusPending, Priority: domain.PriorityHigh},
		{Status: domain.StatusPending, Priority: domain.PriorityLow},
		{Status: domain.StatusInProgress, Priority: domain.PriorityMedium},
		{Status: domain.StatusResolved, Priority: domain.PriorityHigh},
	}

	summary := domain.Summarize(complaints, testNow)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.ByStatus[domain.StatusPending])
	assert.Equal(t, 0, summary.ByStatus[domain.StatusAssigned])
	assert.Equal(t, 1, summary.ByStatus[domain.StatusInProgress])
	assert.Equal(t, 1, summary.ByStatus[domain.StatusResolved])
	assert.Equal(t, 2, summary.HighPriority)
	assert.InDelta(t, 0.25, summary.ResolutionRate, 1e-9)
}

func TestSummarize_OverdueExcludesResolved(t *testing.T) {
	pastDeadline := testNow.Add(-24 * time.Hour)
	complaint := domain.Complaint{
		Status:   domain.StatusInProgress,
		Priority: domain.PriorityMedium,
		Deadline: &pastDeadline,
	}

	summary := domain.Summarize([]domain.Complaint{complaint}, testNow)
	assert.Equal(t, 1, summary.Overdue)

	complaint.Status = domain.StatusResolved
	summary = domain.Summarize([]domain.Complaint{complaint}, testNow)
	assert.Zero(t, summary.Overdue)
	assert.Equal(t, 1.0, summary.ResolutionRate)
}

func TestSummarize_FutureDeadlineIsNotOverdue(t *testing.T) {
	future := testNow.AddDate(0, 0, 5)
	complaints := []domain.Complaint{
		{Status: domain.StatusPending, Priority: domain.PriorityLow, Deadline: &future},
	}

	summary := domain.Summarize(complaints, testNow)

	assert.Zero(t, summary.Overdue)
}
