package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campus-kit/complaint-service/internal/auth"
	"github.com/campus-kit/complaint-service/internal/config"
	"github.com/campus-kit/complaint-service/internal/domain"
	"github.com/campus-kit/complaint-service/internal/repository"
	apperrors "github.com/campus-kit/complaint-service/pkg/util/errorutil"
)

// AuthService coordinates registration, login and the session lifecycle.
type AuthService struct {
	accounts   repository.AccountRepository
	tokenMgr   *auth.TokenManager
	sessions   *auth.SessionStore
	bcryptCost int
}

// AuthDependencies encapsulates collaborators for auth service.
type AuthDependencies struct {
	AccountRepo  repository.AccountRepository
	TokenManager *auth.TokenManager
	SessionStore *auth.SessionStore
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	tokenMgr := deps.TokenManager
	if tokenMgr == nil {
		tokenMgr = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	}
	return &AuthService{
		accounts:   deps.AccountRepo,
		tokenMgr:   tokenMgr,
		sessions:   deps.SessionStore,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterInput describes a new account payload.
type RegisterInput struct {
	Name     string
	Email    string
	CampusID string
	Password string
	Role     domain.Role
}

// Register creates a new account and opens a session for it.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.Account, string, time.Time, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewValidationError("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	account := &domain.Account{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		CampusID:     strings.TrimSpace(input.CampusID),
		PasswordHash: hash,
		Role:         input.Role,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	return s.openSession(ctx, account)
}

// Login authenticates an account and opens a session for it.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, string, time.Time, error) {
	account, err := s.accounts.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.openSession(ctx, account)
}

// Logout ends the session identified by the token id. Subsequent requests
// bearing the same token fail at the middleware even before JWT expiry.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	return s.sessions.Delete(ctx, tokenID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) openSession(ctx context.Context, account *domain.Account) (*domain.Account, string, time.Time, error) {
	token, tokenID, exp, err := s.tokenMgr.GenerateToken(account)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if err := s.sessions.Create(ctx, tokenID, account.ID, time.Until(exp)); err != nil {
		return nil, "", time.Time{}, apperrors.NewRepositoryUnavailable(err)
	}
	return account, token, exp, nil
}
