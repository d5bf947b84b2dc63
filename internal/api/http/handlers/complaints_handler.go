package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/complaint-service/internal/api/dto"
	"github.com/campus-kit/complaint-service/internal/auth"
	"github.com/campus-kit/complaint-service/internal/domain"
	"github.com/campus-kit/complaint-service/internal/service"
	apperrors "github.com/campus-kit/complaint-service/pkg/util/errorutil"
)

// ComplaintsHandler manages complaint endpoints for both roles.
type ComplaintsHandler struct {
	service *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{service: complaintService}
}

// CreateComplaint POST /complaints.
func (h *ComplaintsHandler) CreateComplaint(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Account == nil {
		return apperrors.NewUnauthorized("account required")
	}
	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.Description == "" {
		return apperrors.NewValidationError("title and description required", nil)
	}
	if !req.Category.Valid() {
		return apperrors.NewValidationError("unknown category", map[string]any{"category": req.Category})
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return apperrors.NewValidationError("unknown priority", map[string]any{"priority": req.Priority})
	}

	complaint, err := h.service.Create(c.Context(), principal.Account, service.ComplaintCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Location:    req.Location,
		Deadline:    req.Deadline,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": complaintSummary(complaint, time.Now())})
}

// ListComplaints GET /complaints.
func (h *ComplaintsHandler) ListComplaints(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Account == nil {
		return apperrors.NewUnauthorized("account required")
	}
	filter := parseComplaintQuery(c)
	complaints, err := h.service.ListFor(c.Context(), principal.Account, filter)
	if err != nil {
		return err
	}
	now := time.Now()
	items := make([]dto.ComplaintSummary, 0, len(complaints))
	for i := range complaints {
		items = append(items, complaintSummary(&complaints[i], now))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetComplaint GET /complaints/:id.
func (h *ComplaintsHandler) GetComplaint(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Account == nil {
		return apperrors.NewUnauthorized("account required")
	}
	complaint, err := h.service.GetFor(c.Context(), principal.Account, c.Params("id"))
	if err != nil {
		return err
	}
	history, err := h.service.History(c.Context(), principal.Account, complaint.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": complaintDetail(complaint, history, time.Now())})
}

// UpdateStatus PUT /complaints/:id/status.
func (h *ComplaintsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Account == nil {
		return apperrors.NewUnauthorized("account required")
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	complaint, err := h.service.Transition(c.Context(), principal.Account, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": complaintSummary(complaint, time.Now())})
}

func parseComplaintQuery(c *fiber.Ctx) service.ComplaintListFilter {
	filter := service.ComplaintListFilter{}
	if statusStr := c.Query("status"); statusStr != "" {
		for _, part := range strings.Split(statusStr, ",") {
			filter.Statuses = append(filter.Statuses, domain.ComplaintStatus(strings.TrimSpace(part)))
		}
	}
	if priorityStr := c.Query("priority"); priorityStr != "" {
		for _, part := range strings.Split(priorityStr, ",") {
			filter.Priorities = append(filter.Priorities, domain.ComplaintPriority(strings.TrimSpace(part)))
		}
	}
	if categoryStr := c.Query("category"); categoryStr != "" {
		for _, part := range strings.Split(categoryStr, ",") {
			filter.Categories = append(filter.Categories, domain.ComplaintCategory(strings.TrimSpace(part)))
		}
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		filter.SearchTerm = &q
	}
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize
	return filter
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func complaintSummary(complaint *domain.Complaint, now time.Time) dto.ComplaintSummary {
	return dto.ComplaintSummary{
		ID:        complaint.ID,
		AuthorID:  complaint.AuthorID,
		Title:     complaint.Title,
		Category:  complaint.Category,
		Priority:  complaint.Priority,
		Status:    complaint.Status,
		Location:  complaint.Location,
		Deadline:  complaint.Deadline,
		Urgency:   deadlineBucketResponse(domain.ClassifyDeadline(complaint.Deadline, now)),
		CreatedAt: complaint.CreatedAt,
		UpdatedAt: complaint.UpdatedAt,
	}
}

func complaintDetail(complaint *domain.Complaint, history []domain.ComplaintHistory, now time.Time) dto.ComplaintDetailResponse {
	historyResp := make([]dto.ComplaintHistoryResponse, 0, len(history))
	for _, entry := range history {
		historyResp = append(historyResp, dto.ComplaintHistoryResponse{
			ID:        entry.ID,
			ActorID:   entry.ActorID,
			OldStatus: entry.OldStatus,
			NewStatus: entry.NewStatus,
			CreatedAt: entry.CreatedAt,
		})
	}
	return dto.ComplaintDetailResponse{
		ID:          complaint.ID,
		AuthorID:    complaint.AuthorID,
		Title:       complaint.Title,
		Description: complaint.Description,
		Category:    complaint.Category,
		Priority:    complaint.Priority,
		Status:      complaint.Status,
		Location:    complaint.Location,
		Deadline:    complaint.Deadline,
		Urgency:     deadlineBucketResponse(domain.ClassifyDeadline(complaint.Deadline, now)),
		CreatedAt:   complaint.CreatedAt,
		UpdatedAt:   complaint.UpdatedAt,
		History:     historyResp,
		NextActions: domain.NextStatuses(complaint.Status),
	}
}

func deadlineBucketResponse(bucket domain.DeadlineBucket) dto.DeadlineBucketResponse {
	return dto.DeadlineBucketResponse{
		Kind: string(bucket.Kind),
		Days: bucket.Days,
	}
}
