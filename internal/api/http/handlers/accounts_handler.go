package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/complaint-service/internal/api/dto"
	"github.com/campus-kit/complaint-service/internal/auth"
	"github.com/campus-kit/complaint-service/internal/domain"
	"github.com/campus-kit/complaint-service/internal/service"
	apperrors "github.com/campus-kit/complaint-service/pkg/util/errorutil"
)

// AccountsHandler exposes registration and session endpoints.
type AccountsHandler struct {
	auth *service.AuthService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(authService *service.AuthService) *AccountsHandler {
	return &AccountsHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AccountsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.CampusID == "" || req.Password == "" {
		return apperrors.NewValidationError("name, email, campus_id, password required", nil)
	}
	if req.Role == "" {
		req.Role = domain.RoleStudent
	}
	if !req.Role.Valid() {
		return apperrors.NewValidationError("unknown role", map[string]any{"role": req.Role})
	}

	account, token, exp, err := h.auth.Register(c.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		CampusID: req.CampusID,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"account": accountResponse(account),
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Login handles POST /auth/login.
func (h *AccountsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	account, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"account": accountResponse(account),
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AccountsHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.auth.Logout(c.Context(), principal.TokenID); err != nil {
		return apperrors.NewRepositoryUnavailable(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

func accountResponse(account *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:       account.ID,
		Name:     account.Name,
		Email:    account.Email,
		CampusID: account.CampusID,
		Role:     account.Role,
	}
}
