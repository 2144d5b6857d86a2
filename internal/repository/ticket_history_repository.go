package repository

import (
	"context"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// TicketHistoryRepository persists the append-only change ledger.
type TicketHistoryRepository interface {
	Create(ctx context.Context, entry *domain.TicketHistory) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketHistory, error)
}

type ticketHistoryRepository struct {
	db Querier
}

// NewTicketHistoryRepository instantiates the repository.
func NewTicketHistoryRepository(db Querier) TicketHistoryRepository {
	return &ticketHistoryRepository{db: db}
}

func (r *ticketHistoryRepository) Create(ctx context.Context, entry *domain.TicketHistory) error {
	const query = `
        INSERT INTO ticket_history (ticket_id, field_name, old_value, new_value, changed_by)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		entry.TicketID,
		entry.FieldName,
		entry.OldValue,
		entry.NewValue,
		entry.ChangedBy,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *ticketHistoryRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketHistory, error) {
	const query = `
        SELECT id, ticket_id, field_name, old_value, new_value, changed_by, created_at
        FROM ticket_history WHERE ticket_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.TicketHistory{}
	for rows.Next() {
		var h domain.TicketHistory
		if err := rows.Scan(&h.ID, &h.TicketID, &h.FieldName, &h.OldValue, &h.NewValue, &h.ChangedBy, &h.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}
