package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-kit/complaint-service/internal/domain"
	"github.com/campus-kit/complaint-service/internal/events"
	"github.com/campus-kit/complaint-service/internal/service"
	apperrors "github.com/campus-kit/complaint-service/pkg/util/errorutil"
)

var (
	studentActor = &domain.Account{ID: "student-1", Name: "Asha", Role: domain.RoleStudent}
	otherStudent = &domain.Account{ID: "student-2", Name: "Ravi", Role: domain.RoleStudent}
	adminActor   = &domain.Account{ID: "admin-1", Name: "Dr. Rao", Role: domain.RoleAdmin}
)

type fixture struct {
	svc        *service.ComplaintService
	complaints *mockComplaintRepo
	history    *mockHistoryRepo
	dispatcher *capturingDispatcher
}

func newFixture() *fixture {
	complaints := newMockComplaintRepo()
	history := newMockHistoryRepo()
	dispatcher := &capturingDispatcher{}
	svc := service.NewComplaintService(service.ComplaintDependencies{
		ComplaintRepo: complaints,
		HistoryRepo:   history,
		Dispatcher:    dispatcher,
	})
	return &fixture{svc: svc, complaints: complaints, history: history, dispatcher: dispatcher}
}

func fileComplaint(t *testing.T, f *fixture, author *domain.Account, title string) *domain.Complaint {
	t.Helper()
	complaint, err := f.svc.Create(context.Background(), author, service.ComplaintCreateInput{
		Title:       title,
		Description: "details about " + title,
		Category:    domain.CategoryFacilities,
		Priority:    domain.PriorityMedium,
	})
	require.NoError(t, err)
	return complaint
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	return domainErr.Code
}

func TestCreate_StartsPending(t *testing.T) {
	f := newFixture()

	complaint := fileComplaint(t, f, studentActor, "Broken fan")

	assert.Equal(t, domain.StatusPending, complaint.Status)
	assert.Equal(t, studentActor.ID, complaint.AuthorID)

	published := f.dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventComplaintCreated, published[0].Type)
}

func TestCreate_DefaultsPriorityToMedium(t *testing.T) {
	f := newFixture()

	complaint, err := f.svc.Create(context.Background(), studentActor, service.ComplaintCreateInput{
		Title:       "No hot water",
		Description: "Hostel block C showers",
		Category:    domain.CategoryHostel,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, complaint.Priority)
}

func TestCreate_AdminsMayNotFileComplaints(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), adminActor, service.ComplaintCreateInput{
		Title:       "x",
		Description: "y",
		Category:    domain.CategoryOthers,
	})

	assert.Equal(t, "FORBIDDEN", domainCode(t, err))
}

func TestTransition_AdminAdvancesThenCannotRegress(t *testing.T) {
	f := newFixture()
	complaint := fileComplaint(t, f, studentActor, "Flickering lights")

	updated, err := f.svc.Transition(context.Background(), adminActor, complaint.ID, domain.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, updated.Status)

	_, err = f.svc.Transition(context.Background(), adminActor, complaint.ID, domain.StatusPending)
	assert.Equal(t, "INVALID_TRANSITION", domainCode(t, err))

	stored, err := f.complaints.GetByID(context.Background(), complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, stored.Status)
}

func TestTransition_StudentIsForbiddenAndStatusUnchanged(t *testing.T) {
	f := newFixture()
	complaint := fileComplaint(t, f, studentActor, "Flooded corridor")

	_, err := f.svc.Transition(context.Background(), studentActor, complaint.ID, domain.StatusResolved)
	assert.Equal(t, "FORBIDDEN", domainCode(t, err))

	stored, err := f.complaints.GetByID(context.Background(), complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestTransition_PendingCannotSkipToResolved(t *testing.T) {
	f := newFixture()
	complaint := fileComplaint(t, f, studentActor, "Cracked window")

	_, err := f.svc.Transition(context.Background(), adminActor, complaint.ID, domain.StatusResolved)

	assert.Equal(t, "INVALID_TRANSITION", domainCode(t, err))
}

func TestTransition_UnknownComplaintIsNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Transition(context.Background(), adminActor, "missing-id", domain.StatusAssigned)

	assert.Equal(t, "NOT_FOUND", domainCode(t, err))
}

func TestTransition_ResolvedIsTerminal(t *testing.T) {
	f := newFixture()
	complaint := fileComplaint(t, f, studentActor, "Noisy generator")

	ctx := context.Background()
	for _, next := range []domain.ComplaintStatus{
		domain.StatusAssigned, domain.StatusInProgress, domain.StatusResolved,
	} {
		_, err := f.svc.Transition(ctx, adminActor, complaint.ID, next)
		require.NoError(t, err)
	}

	_, err := f.svc.Transition(ctx, adminActor, complaint.ID, domain.StatusInProgress)
	assert.Equal(t, "INVALID_TRANSITION", domainCode(t, err))
}

func TestTransition_RecordsHistoryAndEvent(t *testing.T) {
	f := newFixture()
	complaint := fileComplaint(t, f, studentActor, "Stuck elevator")

	_, err := f.svc.Transition(context.Background(), adminActor, complaint.ID, domain.StatusAssigned)
	require.NoError(t, err)

	entries, err := f.history.ListByComplaint(context.Background(), complaint.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.StatusPending, entries[0].OldStatus)
	assert.Equal(t, domain.StatusAssigned, entries[0].NewStatus)
	assert.Equal(t, adminActor.ID, entries[0].ActorID)

	published := f.dispatcher.published()
	require.Len(t, published, 2)
	assert.Equal(t, events.EventComplaintStatusChanged, published[1].Type)
}

func TestListFor_StudentSeesOnlyOwnComplaints(t *testing.T) {
	f := newFixture()
	mine := fileComplaint(t, f, studentActor, "Broken bench")
	fileComplaint(t, f, otherStudent, "Torn net")

	result, err := f.svc.ListFor(context.Background(), studentActor, service.ComplaintListFilter{})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, mine.ID, result[0].ID)
}

func TestListFor_AdminSeesAllComplaints(t *testing.T) {
	f := newFixture()
	fileComplaint(t, f, studentActor, "Broken bench")
	fileComplaint(t, f, otherStudent, "Torn net")

	result, err := f.svc.ListFor(context.Background(), adminActor, service.ComplaintListFilter{})

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestListFor_ReflectsCompletedTransition(t *testing.T) {
	f := newFixture()
	complaint := fileComplaint(t, f, studentActor, "Leaky tap")

	_, err := f.svc.Transition(context.Background(), adminActor, complaint.ID, domain.StatusInProgress)
	require.NoError(t, err)

	// read-after-write within the same session
	result, err := f.svc.ListFor(context.Background(), studentActor, service.ComplaintListFilter{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, domain.StatusInProgress, result[0].Status)
}

func TestGetFor_StudentCannotReadOthersComplaint(t *testing.T) {
	f := newFixture()
	complaint := fileComplaint(t, f, studentActor, "Dirty canteen")

	_, err := f.svc.GetFor(context.Background(), otherStudent, complaint.ID)
	assert.Equal(t, "FORBIDDEN", domainCode(t, err))

	fetched, err := f.svc.GetFor(context.Background(), adminActor, complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, complaint.ID, fetched.ID)
}

func TestTransition_RepositoryFailureSurfacesAsTypedError(t *testing.T) {
	f := newFixture()
	complaint := fileComplaint(t, f, studentActor, "Out of order printer")

	f.complaints.failWith = assert.AnError
	_, err := f.svc.Transition(context.Background(), adminActor, complaint.ID, domain.StatusAssigned)

	assert.Equal(t, "INTERNAL_ERROR", domainCode(t, err))
}
