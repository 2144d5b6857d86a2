package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// TicketCommentRepository persists comment threads.
type TicketCommentRepository interface {
	Create(ctx context.Context, comment *domain.TicketComment) error
	ListByTicket(ctx context.Context, ticketID string, includeInternal bool) ([]domain.TicketComment, error)
}

type ticketCommentRepository struct {
	db Querier
}

// NewTicketCommentRepository instantiates the repository.
func NewTicketCommentRepository(db Querier) TicketCommentRepository {
	return &ticketCommentRepository{db: db}
}

func (r *ticketCommentRepository) Create(ctx context.Context, comment *domain.TicketComment) error {
	const query = `
        INSERT INTO ticket_comments (ticket_id, user_id, comment, is_internal)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		comment.TicketID,
		comment.UserID,
		comment.Comment,
		comment.IsInternal,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
}

// ListByTicket returns comments oldest-first. Internal comments are
// excluded unless includeInternal is set.
func (r *ticketCommentRepository) ListByTicket(ctx context.Context, ticketID string, includeInternal bool) ([]domain.TicketComment, error) {
	query := `SELECT id, ticket_id, user_id, comment, is_internal, created_at, updated_at
              FROM ticket_comments WHERE ticket_id=$1`
	if !includeInternal {
		query += ` AND is_internal = FALSE`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComments(rows)
}

func scanComments(rows pgx.Rows) ([]domain.TicketComment, error) {
	result := []domain.TicketComment{}
	for rows.Next() {
		var c domain.TicketComment
		if err := rows.Scan(&c.ID, &c.TicketID, &c.UserID, &c.Comment, &c.IsInternal, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
