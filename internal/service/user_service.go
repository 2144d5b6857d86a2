package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// UserService covers profile administration and per-user preferences.
type UserService struct {
	users       repository.UserRepository
	profiles    repository.ProfileRepository
	preferences repository.PreferenceRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, profiles repository.ProfileRepository, preferences repository.PreferenceRepository) *UserService {
	return &UserService{users: users, profiles: profiles, preferences: preferences}
}

// ListProfiles returns all user profiles.
func (s *UserService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return profiles, nil
}

// GetProfile fetches a profile by id.
func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return profile, nil
}

// UpdateProfile applies a partial profile update.
func (s *UserService) UpdateProfile(ctx context.Context, id string, update repository.ProfileUpdate) (*domain.Profile, error) {
	profile, err := s.profiles.Update(ctx, id, update)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return profile, nil
}

// SetProfileStatus updates the profile's status label.
func (s *UserService) SetProfileStatus(ctx context.Context, id, status string) error {
	if err := s.profiles.UpdateStatus(ctx, id, status); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// SetAccountLocked toggles the account lock flag.
func (s *UserService) SetAccountLocked(ctx context.Context, id string, locked bool) error {
	if err := s.profiles.SetAccountLocked(ctx, id, locked); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// DeleteUser removes a user account and its profile. Callers cannot delete
// themselves.
func (s *UserService) DeleteUser(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return apperrors.NewValidationError("cannot delete your own account", nil)
	}
	if err := s.profiles.Delete(ctx, targetID); err != nil && err != pgx.ErrNoRows {
		return apperrors.MapError(err)
	}
	if err := s.users.Delete(ctx, targetID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// GetPreferences returns the caller's preference row, creating defaults on
// first access.
func (s *UserService) GetPreferences(ctx context.Context, userID string) (*domain.UserPreference, error) {
	pref, err := s.preferences.GetByUser(ctx, userID)
	if err == nil {
		return pref, nil
	}
	if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}
	pref = defaultPreferences(userID)
	if err := s.preferences.Create(ctx, pref); err != nil {
		return nil, apperrors.MapError(err)
	}
	return pref, nil
}

// UpdatePreferences applies a partial preference update, creating the row
// first when missing.
func (s *UserService) UpdatePreferences(ctx context.Context, userID string, update repository.PreferenceUpdate) (*domain.UserPreference, error) {
	if _, err := s.GetPreferences(ctx, userID); err != nil {
		return nil, err
	}
	pref, err := s.preferences.Update(ctx, userID, update)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return pref, nil
}

func defaultPreferences(userID string) *domain.UserPreference {
	return &domain.UserPreference{
		UserID:             userID,
		EmailNotifications: true,
		PushNotifications:  true,
		ProjectUpdates:     true,
		TaskAssignments:    true,
		SystemMaintenance:  true,
		Language:           "en",
		Timezone:           "UTC",
	}
}
