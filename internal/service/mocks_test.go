package service_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/campus-kit/complaint-service/internal/domain"
	"github.com/campus-kit/complaint-service/internal/events"
	"github.com/campus-kit/complaint-service/internal/repository"
)

// mockComplaintRepo is an in-memory repository.ComplaintRepository.
type mockComplaintRepo struct {
	mu         sync.Mutex
	complaints map[string]domain.Complaint
	order      []string
	nextID     int
	failWith   error
}

func newMockComplaintRepo() *mockComplaintRepo {
	return &mockComplaintRepo{complaints: make(map[string]domain.Complaint)}
}

func (m *mockComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.nextID++
	complaint.ID = fmt.Sprintf("complaint-%d", m.nextID)
	m.complaints[complaint.ID] = *complaint
	m.order = append(m.order, complaint.ID)
	return nil
}

func (m *mockComplaintRepo) GetByID(_ context.Context, id string) (*domain.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	complaint, ok := m.complaints[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &complaint, nil
}

func (m *mockComplaintRepo) UpdateStatus(_ context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	complaint, ok := m.complaints[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	complaint.Status = status
	m.complaints[id] = complaint
	return &complaint, nil
}

func (m *mockComplaintRepo) ListWithFilter(_ context.Context, filter repository.ComplaintFilter) ([]domain.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []domain.Complaint
	for _, id := range m.order {
		c := m.complaints[id]
		if filter.AuthorID != nil && c.AuthorID != *filter.AuthorID {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, c.Status) {
			continue
		}
		if filter.SearchTerm != nil {
			term := strings.ToLower(*filter.SearchTerm)
			if !strings.Contains(strings.ToLower(c.Title), term) &&
				!strings.Contains(strings.ToLower(c.Description), term) {
				continue
			}
		}
		result = append(result, c)
	}
	return result, nil
}

func containsStatus(statuses []domain.ComplaintStatus, status domain.ComplaintStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// mockHistoryRepo records audit entries in memory.
type mockHistoryRepo struct {
	mu      sync.Mutex
	entries []domain.ComplaintHistory
	nextID  int
}

func newMockHistoryRepo() *mockHistoryRepo {
	return &mockHistoryRepo{}
}

func (m *mockHistoryRepo) Create(_ context.Context, entry *domain.ComplaintHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	entry.ID = fmt.Sprintf("history-%d", m.nextID)
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockHistoryRepo) ListByComplaint(_ context.Context, complaintID string, _, _ int) ([]domain.ComplaintHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.ComplaintHistory
	for _, entry := range m.entries {
		if entry.ComplaintID == complaintID {
			result = append(result, entry)
		}
	}
	return result, nil
}

// capturingDispatcher records published events.
type capturingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *capturingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *capturingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *capturingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.Event, len(d.events))
	copy(out, d.events)
	return out
}
