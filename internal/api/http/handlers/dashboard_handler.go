package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/complaint-service/internal/api/dto"
	"github.com/campus-kit/complaint-service/internal/auth"
	"github.com/campus-kit/complaint-service/internal/domain"
	"github.com/campus-kit/complaint-service/internal/service"
	apperrors "github.com/campus-kit/complaint-service/pkg/util/errorutil"
)

// dashboardFetchLimit bounds how many complaints feed the summary counts.
const dashboardFetchLimit = 1000

// DashboardHandler serves summary counts over the caller's role-scoped view.
type DashboardHandler struct {
	service *service.ComplaintService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(complaintService *service.ComplaintService) *DashboardHandler {
	return &DashboardHandler{service: complaintService}
}

// Summary GET /dashboard.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Account == nil {
		return apperrors.NewUnauthorized("account required")
	}

	complaints, err := h.service.ListFor(c.Context(), principal.Account, service.ComplaintListFilter{
		Limit: dashboardFetchLimit,
	})
	if err != nil {
		return err
	}

	summary := domain.Summarize(complaints, time.Now())
	return c.JSON(fiber.Map{"data": dto.DashboardResponse{
		Total:          summary.Total,
		ByStatus:       summary.ByStatus,
		HighPriority:   summary.HighPriority,
		Overdue:        summary.Overdue,
		ResolutionRate: summary.ResolutionRate,
	}})
}
