package domain

import "time"

// ChatMessage is a message in the shared company chat.
type ChatMessage struct {
	ID        string
	UserID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TypingIndicator marks a user as currently typing. Stale indicators are
// purged lazily on read rather than by a timer.
type TypingIndicator struct {
	ID        string
	UserID    string
	IsTyping  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
