package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if f.users == nil {
		f.users = map[string]*domain.User{}
	}
	if u.ID == "" {
		u.ID = "user-" + u.Email
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.users, id)
	return nil
}

type fakePreferenceRepo struct {
	prefs       map[string]*domain.UserPreference
	createCalls int
}

func (f *fakePreferenceRepo) GetByUser(_ context.Context, userID string) (*domain.UserPreference, error) {
	p, ok := f.prefs[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (f *fakePreferenceRepo) Create(_ context.Context, pref *domain.UserPreference) error {
	if f.prefs == nil {
		f.prefs = map[string]*domain.UserPreference{}
	}
	f.createCalls++
	pref.ID = "pref-" + pref.UserID
	f.prefs[pref.UserID] = pref
	return nil
}

func (f *fakePreferenceRepo) Update(_ context.Context, userID string, update repository.PreferenceUpdate) (*domain.UserPreference, error) {
	p, ok := f.prefs[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if update.DarkMode != nil {
		p.DarkMode = *update.DarkMode
	}
	if update.Language != nil {
		p.Language = *update.Language
	}
	if update.EmailNotifications != nil {
		p.EmailNotifications = *update.EmailNotifications
	}
	return p, nil
}

func newUserFixture() (*UserService, *fakeUserRepo, *fakeProfileRepo, *fakePreferenceRepo) {
	users := &fakeUserRepo{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Email: "a@example.com", IsActive: true},
		"user-2": {ID: "user-2", Email: "b@example.com", IsActive: true},
	}}
	profiles := &fakeProfileRepo{profiles: map[string]*domain.Profile{
		"user-1": {ID: "user-1", Email: "a@example.com"},
		"user-2": {ID: "user-2", Email: "b@example.com"},
	}}
	prefs := &fakePreferenceRepo{}
	return NewUserService(users, profiles, prefs), users, profiles, prefs
}

func TestDeleteUserSelfGuard(t *testing.T) {
	svc, users, _, _ := newUserFixture()

	err := svc.DeleteUser(context.Background(), "user-1", "user-1")
	var derr *apperrors.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "VALIDATION_FAILED", derr.Code)
	assert.Contains(t, users.users, "user-1")
}

func TestDeleteUserRemovesProfileAndAccount(t *testing.T) {
	svc, users, profiles, _ := newUserFixture()

	require.NoError(t, svc.DeleteUser(context.Background(), "user-1", "user-2"))
	assert.NotContains(t, users.users, "user-2")
	assert.NotContains(t, profiles.profiles, "user-2")
}

func TestDeleteUserToleratesMissingProfile(t *testing.T) {
	svc, _, profiles, _ := newUserFixture()
	delete(profiles.profiles, "user-2")

	assert.NoError(t, svc.DeleteUser(context.Background(), "user-1", "user-2"))
}

func TestGetPreferencesCreatesDefaults(t *testing.T) {
	svc, _, _, prefs := newUserFixture()

	pref, err := svc.GetPreferences(context.Background(), "user-1")
	require.NoError(t, err)

	assert.True(t, pref.EmailNotifications)
	assert.True(t, pref.PushNotifications)
	assert.True(t, pref.SystemMaintenance)
	assert.False(t, pref.DarkMode)
	assert.False(t, pref.CompactView)
	assert.Equal(t, "en", pref.Language)
	assert.Equal(t, "UTC", pref.Timezone)
	assert.Equal(t, 1, prefs.createCalls)

	// second read reuses the stored row
	_, err = svc.GetPreferences(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, prefs.createCalls)
}

func TestUpdatePreferencesCreatesRowFirst(t *testing.T) {
	svc, _, _, prefs := newUserFixture()

	dark := true
	lang := "de"
	pref, err := svc.UpdatePreferences(context.Background(), "user-1", repository.PreferenceUpdate{
		DarkMode: &dark,
		Language: &lang,
	})
	require.NoError(t, err)

	assert.True(t, pref.DarkMode)
	assert.Equal(t, "de", pref.Language)
	assert.Equal(t, 1, prefs.createCalls)
}
