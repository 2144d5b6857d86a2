package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const chatMessageColumns = `id, user_id, content, created_at, updated_at`

const typingIndicatorColumns = `id, user_id, is_typing, created_at, updated_at`

// ChatRepository persists chat messages and typing indicators.
type ChatRepository interface {
	CreateMessage(ctx context.Context, m *domain.ChatMessage) error
	GetMessage(ctx context.Context, id string) (*domain.ChatMessage, error)
	ListMessages(ctx context.Context, limit, offset int) ([]domain.ChatMessage, error)
	DeleteMessage(ctx context.Context, id string) error

	UpsertTypingIndicator(ctx context.Context, userID string, isTyping bool) (*domain.TypingIndicator, error)
	ListTypingIndicators(ctx context.Context, excludeUserID string) ([]domain.TypingIndicator, error)
	PurgeStaleTypingIndicators(ctx context.Context, olderThan time.Time) error
}

type chatRepository struct {
	db Querier
}

// NewChatRepository instantiates the repository.
func NewChatRepository(db Querier) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateMessage(ctx context.Context, m *domain.ChatMessage) error {
	const query = `
        INSERT INTO chat_messages (user_id, content)
        VALUES ($1,$2)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, m.UserID, m.Content).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *chatRepository) GetMessage(ctx context.Context, id string) (*domain.ChatMessage, error) {
	return scanChatMessageRow(r.db.QueryRow(ctx,
		`SELECT `+chatMessageColumns+` FROM chat_messages WHERE id=$1`, id))
}

// ListMessages returns the requested page newest first. Callers reverse the
// page for chronological display.
func (r *chatRepository) ListMessages(ctx context.Context, limit, offset int) ([]domain.ChatMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+chatMessageColumns+` FROM chat_messages ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.ChatMessage{}
	for rows.Next() {
		m, err := scanChatMessageRow(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *m)
	}
	return messages, rows.Err()
}

func (r *chatRepository) DeleteMessage(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM chat_messages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *chatRepository) UpsertTypingIndicator(ctx context.Context, userID string, isTyping bool) (*domain.TypingIndicator, error) {
	const query = `
        INSERT INTO chat_typing_indicators (user_id, is_typing)
        VALUES ($1,$2)
        ON CONFLICT (user_id) DO UPDATE SET is_typing = EXCLUDED.is_typing, updated_at = NOW()
        RETURNING ` + typingIndicatorColumns
	return scanTypingIndicatorRow(r.db.QueryRow(ctx, query, userID, isTyping))
}

func (r *chatRepository) ListTypingIndicators(ctx context.Context, excludeUserID string) ([]domain.TypingIndicator, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+typingIndicatorColumns+` FROM chat_typing_indicators WHERE is_typing = TRUE AND user_id <> $1`,
		excludeUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	indicators := []domain.TypingIndicator{}
	for rows.Next() {
		ti, err := scanTypingIndicatorRow(rows)
		if err != nil {
			return nil, err
		}
		indicators = append(indicators, *ti)
	}
	return indicators, rows.Err()
}

func (r *chatRepository) PurgeStaleTypingIndicators(ctx context.Context, olderThan time.Time) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM chat_typing_indicators WHERE updated_at < $1`, olderThan)
	return err
}

func scanChatMessageRow(row pgx.Row) (*domain.ChatMessage, error) {
	var m domain.ChatMessage
	if err := row.Scan(&m.ID, &m.UserID, &m.Content, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func scanTypingIndicatorRow(row pgx.Row) (*domain.TypingIndicator, error) {
	var ti domain.TypingIndicator
	if err := row.Scan(&ti.ID, &ti.UserID, &ti.IsTyping, &ti.CreatedAt, &ti.UpdatedAt); err != nil {
		return nil, err
	}
	return &ti, nil
}
