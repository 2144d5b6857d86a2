package repository

import (
	"context"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// TicketAttachmentRepository persists attachment metadata.
type TicketAttachmentRepository interface {
	Create(ctx context.Context, att *domain.TicketAttachment) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketAttachment, error)
}

type ticketAttachmentRepository struct {
	db Querier
}

// NewTicketAttachmentRepository instantiates the repository.
func NewTicketAttachmentRepository(db Querier) TicketAttachmentRepository {
	return &ticketAttachmentRepository{db: db}
}

func (r *ticketAttachmentRepository) Create(ctx context.Context, att *domain.TicketAttachment) error {
	const query = `
        INSERT INTO ticket_attachments (ticket_id, filename, file_path, file_size, mime_type, uploaded_by)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		att.TicketID,
		att.Filename,
		att.FilePath,
		att.FileSize,
		att.MimeType,
		att.UploadedBy,
	).Scan(&att.ID, &att.CreatedAt)
}

func (r *ticketAttachmentRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketAttachment, error) {
	const query = `
        SELECT id, ticket_id, filename, file_path, file_size, mime_type, uploaded_by, created_at
        FROM ticket_attachments WHERE ticket_id=$1 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.TicketAttachment{}
	for rows.Next() {
		var a domain.TicketAttachment
		if err := rows.Scan(&a.ID, &a.TicketID, &a.Filename, &a.FilePath, &a.FileSize, &a.MimeType, &a.UploadedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}
