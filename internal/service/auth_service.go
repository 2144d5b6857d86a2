package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/auth"
	"github.com/spec-kit/erp-backend/internal/config"
	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	profiles   repository.ProfileRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		profiles:   deps.ProfileRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account together with its profile row.
func (s *AuthService) Register(ctx context.Context, email, password string, firstName, lastName *string) (*domain.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("email is required", nil)
	}
	if len(password) < 8 {
		return nil, "", time.Time{}, apperrors.NewValidationError("password must be at least 8 characters", nil)
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if exists {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	profile := &domain.Profile{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}

// Login authenticates a user by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if !user.IsActive {
		return nil, "", time.Time{}, apperrors.NewForbidden("account is deactivated")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}

// Me returns the caller's profile, creating a bare one on first access.
func (s *AuthService) Me(ctx context.Context, user *domain.User) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, user.ID)
	if err == nil {
		return profile, nil
	}
	if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}
	profile = &domain.Profile{ID: user.ID, Email: user.Email}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, apperrors.MapError(err)
	}
	return profile, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters", nil)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// ResetPassword stores a new hash for the target account without checking
// the old password. Reserved for the admin user surface.
func (s *AuthService) ResetPassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters", nil)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return apperrors.MapError(err)
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
