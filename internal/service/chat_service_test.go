package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

type fakeChatRepo struct {
	messages   []domain.ChatMessage
	indicators map[string]domain.TypingIndicator
	purgedAt   *time.Time
	nextID     int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{indicators: map[string]domain.TypingIndicator{}}
}

func (f *fakeChatRepo) CreateMessage(_ context.Context, m *domain.ChatMessage) error {
	f.nextID++
	m.ID = fmt.Sprintf("msg-%d", f.nextID)
	m.CreatedAt = time.Now()
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeChatRepo) GetMessage(_ context.Context, id string) (*domain.ChatMessage, error) {
	for _, m := range f.messages {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// ListMessages pages newest first, mirroring the SQL ordering.
func (f *fakeChatRepo) ListMessages(_ context.Context, limit, offset int) ([]domain.ChatMessage, error) {
	out := []domain.ChatMessage{}
	for i := len(f.messages) - 1; i >= 0; i-- {
		out = append(out, f.messages[i])
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeChatRepo) DeleteMessage(_ context.Context, id string) error {
	for i, m := range f.messages {
		if m.ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeChatRepo) UpsertTypingIndicator(_ context.Context, userID string, isTyping bool) (*domain.TypingIndicator, error) {
	ind := domain.TypingIndicator{ID: "typing-" + userID, UserID: userID, IsTyping: isTyping, UpdatedAt: time.Now()}
	f.indicators[userID] = ind
	return &ind, nil
}

func (f *fakeChatRepo) ListTypingIndicators(_ context.Context, excludeUserID string) ([]domain.TypingIndicator, error) {
	out := []domain.TypingIndicator{}
	for _, ind := range f.indicators {
		if ind.UserID == excludeUserID || !ind.IsTyping {
			continue
		}
		out = append(out, ind)
	}
	return out, nil
}

func (f *fakeChatRepo) PurgeStaleTypingIndicators(_ context.Context, olderThan time.Time) error {
	f.purgedAt = &olderThan
	for id, ind := range f.indicators {
		if ind.UpdatedAt.Before(olderThan) {
			delete(f.indicators, id)
		}
	}
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile
}

func (f *fakeProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	if f.profiles == nil {
		f.profiles = map[string]*domain.Profile{}
	}
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (f *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeProfileRepo) List(_ context.Context) ([]domain.Profile, error) {
	out := []domain.Profile{}
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, id string, _ repository.ProfileUpdate) (*domain.Profile, error) {
	return f.GetByID(context.Background(), id)
}

func (f *fakeProfileRepo) UpdateStatus(_ context.Context, _, _ string) error { return nil }

func (f *fakeProfileRepo) SetAccountLocked(_ context.Context, _ string, _ bool) error { return nil }

func (f *fakeProfileRepo) Delete(_ context.Context, id string) error {
	delete(f.profiles, id)
	return nil
}

func newChatFixture() (*ChatService, *fakeChatRepo, *fakeProfileRepo) {
	chats := newFakeChatRepo()
	first, last := "Ada", "Lovelace"
	profiles := &fakeProfileRepo{profiles: map[string]*domain.Profile{
		"user-1": {ID: "user-1", Email: "ada@example.com", FirstName: &first, LastName: &last},
	}}
	return NewChatService(chats, profiles, nil), chats, profiles
}

func TestSendMessageRequiresContent(t *testing.T) {
	svc, _, _ := newChatFixture()

	_, err := svc.SendMessage(context.Background(), "user-1", "   ")
	assert.Error(t, err)

	view, err := svc.SendMessage(context.Background(), "user-1", "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", view.Message.Content)
	assert.Equal(t, "Ada Lovelace", view.UserName)
}

func TestListMessagesChronological(t *testing.T) {
	svc, _, _ := newChatFixture()
	ctx := context.Background()

	for _, body := range []string{"first", "second", "third"} {
		_, err := svc.SendMessage(ctx, "user-1", body)
		require.NoError(t, err)
	}

	views, err := svc.ListMessages(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "first", views[0].Message.Content)
	assert.Equal(t, "third", views[2].Message.Content)
}

func TestListMessagesUnknownSenderName(t *testing.T) {
	svc, _, _ := newChatFixture()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "ghost", "boo")
	require.NoError(t, err)

	views, err := svc.ListMessages(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Unknown User", views[0].UserName)
}

func TestDeleteMessageAuthorOnly(t *testing.T) {
	svc, _, _ := newChatFixture()
	ctx := context.Background()

	view, err := svc.SendMessage(ctx, "user-1", "mine")
	require.NoError(t, err)

	err = svc.DeleteMessage(ctx, "user-2", view.Message.ID)
	var derr *apperrors.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "FORBIDDEN", derr.Code)

	assert.NoError(t, svc.DeleteMessage(ctx, "user-1", view.Message.ID))
}

func TestActiveTypistsPurgesStaleAndExcludesCaller(t *testing.T) {
	svc, chats, _ := newChatFixture()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	chats.indicators["stale"] = domain.TypingIndicator{
		ID: "typing-stale", UserID: "stale", IsTyping: true, UpdatedAt: base.Add(-10 * time.Second),
	}
	chats.indicators["fresh"] = domain.TypingIndicator{
		ID: "typing-fresh", UserID: "fresh", IsTyping: true, UpdatedAt: base.Add(-2 * time.Second),
	}
	chats.indicators["caller"] = domain.TypingIndicator{
		ID: "typing-caller", UserID: "caller", IsTyping: true, UpdatedAt: base,
	}

	views, err := svc.ActiveTypists(ctx, "caller")
	require.NoError(t, err)

	require.NotNil(t, chats.purgedAt)
	assert.Equal(t, base.Add(-5*time.Second), *chats.purgedAt)
	require.Len(t, views, 1)
	assert.Equal(t, "fresh", views[0].Indicator.UserID)
}
