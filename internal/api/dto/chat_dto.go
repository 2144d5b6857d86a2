package dto

import (
	"time"

	"github.com/spec-kit/erp-backend/internal/service"
)

// SendChatMessageRequest payload.
type SendChatMessageRequest struct {
	Content string `json:"content"`
}

// SetTypingRequest payload.
type SetTypingRequest struct {
	IsTyping bool `json:"is_typing"`
}

// ChatMessageResponse message with sender name resolved.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewChatMessageResponse maps a message view.
func NewChatMessageResponse(v *service.ChatMessageView) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        v.Message.ID,
		UserID:    v.Message.UserID,
		UserName:  v.UserName,
		Content:   v.Message.Content,
		CreatedAt: v.Message.CreatedAt,
		UpdatedAt: v.Message.UpdatedAt,
	}
}

// TypingIndicatorResponse who is typing.
type TypingIndicatorResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	IsTyping  bool      `json:"is_typing"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTypingIndicatorResponse maps a typing view.
func NewTypingIndicatorResponse(v *service.TypingView) TypingIndicatorResponse {
	return TypingIndicatorResponse{
		ID:        v.Indicator.ID,
		UserID:    v.Indicator.UserID,
		UserName:  v.UserName,
		IsTyping:  v.Indicator.IsTyping,
		UpdatedAt: v.Indicator.UpdatedAt,
	}
}
