package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// typingIndicatorTTL is how long an indicator stays visible after its last
// refresh.
const typingIndicatorTTL = 5 * time.Second

// ChatMessageView pairs a message with the sender's display name.
type ChatMessageView struct {
	Message  domain.ChatMessage
	UserName string
}

// TypingView pairs an indicator with the typist's display name.
type TypingView struct {
	Indicator domain.TypingIndicator
	UserName  string
}

// ChatService covers the shared chat room and typing indicators. Stale
// indicators are purged lazily on read instead of by a background timer.
type ChatService struct {
	chats    repository.ChatRepository
	profiles repository.ProfileRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewChatService builds the service.
func NewChatService(chats repository.ChatRepository, profiles repository.ProfileRepository, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{chats: chats, profiles: profiles, logger: logger, now: time.Now}
}

// SendMessage posts a chat message.
func (s *ChatService) SendMessage(ctx context.Context, userID, content string) (*ChatMessageView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("content is required", nil)
	}
	msg := &domain.ChatMessage{UserID: userID, Content: content}
	if err := s.chats.CreateMessage(ctx, msg); err != nil {
		return nil, apperrors.MapError(err)
	}
	return &ChatMessageView{Message: *msg, UserName: s.displayName(ctx, userID)}, nil
}

// ListMessages returns the requested page in chronological order. The
// storage layer pages newest first; the page is reversed here so clients
// render oldest to newest.
func (s *ChatService) ListMessages(ctx context.Context, limit, offset int) ([]ChatMessageView, error) {
	messages, err := s.chats.ListMessages(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	views := make([]ChatMessageView, 0, len(messages))
	names := map[string]string{}
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		name, ok := names[m.UserID]
		if !ok {
			name = s.displayName(ctx, m.UserID)
			names[m.UserID] = name
		}
		views = append(views, ChatMessageView{Message: m, UserName: name})
	}
	return views, nil
}

// DeleteMessage removes a message. Only the author may delete it.
func (s *ChatService) DeleteMessage(ctx context.Context, actorID, messageID string) error {
	msg, err := s.chats.GetMessage(ctx, messageID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if msg.UserID != actorID {
		return apperrors.NewForbidden("cannot delete another user's message")
	}
	if err := s.chats.DeleteMessage(ctx, messageID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// SetTyping records that the caller is (or stopped) typing.
func (s *ChatService) SetTyping(ctx context.Context, userID string, isTyping bool) (*domain.TypingIndicator, error) {
	indicator, err := s.chats.UpsertTypingIndicator(ctx, userID, isTyping)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return indicator, nil
}

// ActiveTypists purges stale indicators, then returns who is typing apart
// from the caller.
func (s *ChatService) ActiveTypists(ctx context.Context, callerID string) ([]TypingView, error) {
	cutoff := s.now().Add(-typingIndicatorTTL)
	if err := s.chats.PurgeStaleTypingIndicators(ctx, cutoff); err != nil {
		s.logger.Warn("typing indicator purge failed", zap.Error(err))
	}

	indicators, err := s.chats.ListTypingIndicators(ctx, callerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	views := make([]TypingView, 0, len(indicators))
	for _, ind := range indicators {
		views = append(views, TypingView{Indicator: ind, UserName: s.displayName(ctx, ind.UserID)})
	}
	return views, nil
}

func (s *ChatService) displayName(ctx context.Context, userID string) string {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if err != pgx.ErrNoRows {
			s.logger.Warn("profile lookup failed", zap.String("user_id", userID), zap.Error(err))
		}
		return "Unknown User"
	}
	return profile.DisplayName()
}
