package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campus-kit/complaint-service/internal/domain"
	"github.com/campus-kit/complaint-service/internal/events"
	"github.com/campus-kit/complaint-service/internal/repository"
	apperrors "github.com/campus-kit/complaint-service/pkg/util/errorutil"
)

// ComplaintService coordinates the complaint lifecycle: creation, role
// scoped listing and status transitions along the canonical graph.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	history    repository.ComplaintHistoryRepository
	dispatcher events.Dispatcher
}

// ComplaintDependencies bundles collaborators for the complaint service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	HistoryRepo   repository.ComplaintHistoryRepository
	Dispatcher    events.Dispatcher
}

// ComplaintCreateInput describes complaint creation payload.
type ComplaintCreateInput struct {
	Title       string
	Description string
	Category    domain.ComplaintCategory
	Priority    domain.ComplaintPriority
	Location    string
	Deadline    *time.Time
}

// ComplaintListFilter describes listing filters applied on top of the role
// scope derived from the actor.
type ComplaintListFilter struct {
	Statuses   []domain.ComplaintStatus
	Priorities []domain.ComplaintPriority
	Categories []domain.ComplaintCategory
	SearchTerm *string
	Limit      int
	Offset     int
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		history:    deps.HistoryRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create files a new complaint for a student. Status is always pending and
// the creation timestamp is set by the store, regardless of the payload.
func (s *ComplaintService) Create(ctx context.Context, actor *domain.Account, input ComplaintCreateInput) (*domain.Complaint, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("account required")
	}
	if actor.Role != domain.RoleStudent {
		return nil, apperrors.NewForbidden("only students may file complaints")
	}

	complaint := &domain.Complaint{
		AuthorID:    actor.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Priority:    input.Priority,
		Status:      domain.StatusPending,
		Location:    strings.TrimSpace(input.Location),
		Deadline:    input.Deadline,
	}
	if complaint.Priority == "" {
		complaint.Priority = domain.PriorityMedium
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ID,
		Actor:       eventActor(actor),
		Payload: events.ComplaintCreatedPayload{
			Title:    complaint.Title,
			Category: complaint.Category,
			Priority: complaint.Priority,
			Deadline: complaint.Deadline,
		},
	})
	return complaint, nil
}

// ListFor returns complaints visible to the actor: all of them for admins,
// only their own for students.
func (s *ComplaintService) ListFor(ctx context.Context, actor *domain.Account, filter ComplaintListFilter) ([]domain.Complaint, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("account required")
	}
	repoFilter := repository.ComplaintFilter{
		Statuses:   filter.Statuses,
		Priorities: filter.Priorities,
		Categories: filter.Categories,
		SearchTerm: filter.SearchTerm,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}
	s.applyRoleScope(&repoFilter, actor)

	complaints, err := s.complaints.ListWithFilter(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return complaints, nil
}

// GetFor fetches a complaint ensuring the actor may see it.
func (s *ComplaintService) GetFor(ctx context.Context, actor *domain.Account, complaintID string) (*domain.Complaint, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("account required")
	}
	complaint, err := s.complaints.GetByID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": complaintID})
		}
		return nil, apperrors.MapError(err)
	}
	if !actor.IsAdmin() && complaint.AuthorID != actor.ID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return complaint, nil
}

// Transition advances a complaint to targetStatus. Only admins may
// transition, and only along direct edges of the lifecycle graph; resolved
// has no outgoing edges. On success the persisted complaint is returned
// with an audit history row recorded.
func (s *ComplaintService) Transition(ctx context.Context, actor *domain.Account, complaintID string, targetStatus domain.ComplaintStatus) (*domain.Complaint, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("account required")
	}
	if !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("only administrators may change complaint status")
	}
	if !targetStatus.Valid() {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": targetStatus})
	}

	complaint, err := s.complaints.GetByID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": complaintID})
		}
		return nil, apperrors.MapError(err)
	}

	if !domain.CanTransition(complaint.Status, targetStatus) {
		return nil, apperrors.NewInvalidTransition(string(complaint.Status), string(targetStatus))
	}

	oldStatus := complaint.Status
	updated, err := s.complaints.UpdateStatus(ctx, complaint.ID, targetStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": complaintID})
		}
		return nil, apperrors.MapError(err)
	}

	if err := s.recordStatusChange(ctx, actor.ID, updated.ID, oldStatus, targetStatus); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintStatusChanged,
		ComplaintID: updated.ID,
		Actor:       eventActor(actor),
		Payload: events.ComplaintStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: targetStatus,
		},
	})
	return updated, nil
}

// History returns the audit trail for a complaint the actor may see.
func (s *ComplaintService) History(ctx context.Context, actor *domain.Account, complaintID string) ([]domain.ComplaintHistory, error) {
	if s.history == nil {
		return []domain.ComplaintHistory{}, nil
	}
	if _, err := s.GetFor(ctx, actor, complaintID); err != nil {
		return nil, err
	}
	entries, err := s.history.ListByComplaint(ctx, complaintID, 100, 0)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return entries, nil
}

func (s *ComplaintService) applyRoleScope(filter *repository.ComplaintFilter, actor *domain.Account) {
	if actor.IsAdmin() {
		return
	}
	authorID := actor.ID
	filter.AuthorID = &authorID
}

func (s *ComplaintService) recordStatusChange(ctx context.Context, actorID, complaintID string, oldStatus, newStatus domain.ComplaintStatus) error {
	if s.history == nil {
		return nil
	}
	entry := &domain.ComplaintHistory{
		ComplaintID: complaintID,
		ActorID:     actorID,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
	}
	return s.history.Create(ctx, entry)
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func eventActor(account *domain.Account) events.Actor {
	return events.Actor{
		AccountID: account.ID,
		Role:      account.Role,
	}
}
