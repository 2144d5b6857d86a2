package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const ticketColumns = `id, ticket_number, title, description, status, priority, ticket_type,
       department, module, due_date, resolved_at, created_by, assigned_to, group_id,
       created_at, updated_at`

// TicketFilter captures list/search parameters. All filters are optional
// and combine with AND.
type TicketFilter struct {
	Status     *domain.TicketStatus
	Priority   *domain.TicketPriority
	TicketType *domain.TicketType
	Department *string
	AssignedTo *string
	CreatedBy  *string
	Search     *string
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

// TicketUpdate lists the mutable ticket fields. Nil fields are untouched.
type TicketUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TicketStatus
	Priority    *domain.TicketPriority
	TicketType  *domain.TicketType
	Department  *string
	Module      *string
	DueDate     *time.Time
	AssignedTo  *string
	ResolvedAt  *time.Time
}

// Empty reports whether no field is set.
func (u TicketUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil && u.Priority == nil &&
		u.TicketType == nil && u.Department == nil && u.Module == nil && u.DueDate == nil &&
		u.AssignedTo == nil && u.ResolvedAt == nil
}

// sortableTicketColumns whitelists sort_by values; anything else falls back
// to created_at.
var sortableTicketColumns = map[string]bool{
	"ticket_number": true,
	"title":         true,
	"status":        true,
	"priority":      true,
	"ticket_type":   true,
	"department":    true,
	"due_date":      true,
	"resolved_at":   true,
	"created_at":    true,
	"updated_at":    true,
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Update(ctx context.Context, id string, update TicketUpdate) (*domain.Ticket, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	ExistsByNumber(ctx context.Context, ticketNumber string) (bool, error)
	Stats(ctx context.Context, now time.Time) (*domain.TicketStats, error)
}

type ticketRepository struct {
	db Querier
}

// NewTicketRepository instantiates the repository.
func NewTicketRepository(db Querier) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (ticket_number, title, description, status, priority, ticket_type,
                             department, module, due_date, created_by, assigned_to, group_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		ticket.TicketNumber,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.TicketType,
		ticket.Department,
		ticket.Module,
		ticket.DueDate,
		ticket.CreatedBy,
		ticket.AssignedTo,
		ticket.GroupID,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1`
	row := r.db.QueryRow(ctx, query, id)
	return scanTicketRow(row)
}

func (r *ticketRepository) Update(ctx context.Context, id string, update TicketUpdate) (*domain.Ticket, error) {
	builder := psql.Update("tickets").Set("updated_at", squirrel.Expr("NOW()"))
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.Priority != nil {
		builder = builder.Set("priority", *update.Priority)
	}
	if update.TicketType != nil {
		builder = builder.Set("ticket_type", *update.TicketType)
	}
	if update.Department != nil {
		builder = builder.Set("department", *update.Department)
	}
	if update.Module != nil {
		builder = builder.Set("module", *update.Module)
	}
	if update.DueDate != nil {
		builder = builder.Set("due_date", *update.DueDate)
	}
	if update.AssignedTo != nil {
		builder = builder.Set("assigned_to", *update.AssignedTo)
	}
	if update.ResolvedAt != nil {
		builder = builder.Set("resolved_at", *update.ResolvedAt)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + ticketColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanTicketRow(r.db.QueryRow(ctx, query, args...))
}

// Delete removes the ticket row; comments, attachments and history are
// removed by the schema's ON DELETE CASCADE constraints.
func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	builder := psql.Select(ticketColumns).From("tickets")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Priority != nil {
		builder = builder.Where(squirrel.Eq{"priority": *filter.Priority})
	}
	if filter.TicketType != nil {
		builder = builder.Where(squirrel.Eq{"ticket_type": *filter.TicketType})
	}
	if filter.Department != nil {
		builder = builder.Where(squirrel.Eq{"department": *filter.Department})
	}
	if filter.AssignedTo != nil {
		builder = builder.Where(squirrel.Eq{"assigned_to": *filter.AssignedTo})
	}
	if filter.CreatedBy != nil {
		builder = builder.Where(squirrel.Eq{"created_by": *filter.CreatedBy})
	}
	if filter.Search != nil && *filter.Search != "" {
		like := "%" + *filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"title": like},
			squirrel.ILike{"description": like},
			squirrel.ILike{"ticket_number": like},
		})
	}

	sortBy := filter.SortBy
	if !sortableTicketColumns[sortBy] {
		sortBy = "created_at"
	}
	order := "DESC"
	if filter.SortOrder == "asc" {
		order = "ASC"
	}
	builder = builder.OrderBy(sortBy + " " + order)

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	builder = builder.Limit(uint64(limit)).Offset(uint64(offset))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) ExistsByNumber(ctx context.Context, ticketNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tickets WHERE ticket_number=$1)`, ticketNumber,
	).Scan(&exists)
	return exists, err
}

// Stats computes all counters in a single statement so they come from one
// snapshot.
func (r *ticketRepository) Stats(ctx context.Context, now time.Time) (*domain.TicketStats, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'open'),
               COUNT(*) FILTER (WHERE status = 'in_progress'),
               COUNT(*) FILTER (WHERE status = 'resolved'),
               COUNT(*) FILTER (WHERE status = 'closed'),
               COUNT(*) FILTER (WHERE priority = 'urgent'),
               COUNT(*) FILTER (WHERE priority = 'high'),
               COUNT(*) FILTER (WHERE due_date < $1 AND status NOT IN ('resolved','closed'))
        FROM tickets`
	var stats domain.TicketStats
	err := r.db.QueryRow(ctx, query, now).Scan(
		&stats.TotalTickets,
		&stats.OpenTickets,
		&stats.InProgressTickets,
		&stats.ResolvedTickets,
		&stats.ClosedTickets,
		&stats.UrgentTickets,
		&stats.HighPriorityTickets,
		&stats.OverdueTickets,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func scanTicketRow(row pgx.Row) (*domain.Ticket, error) {
	var t domain.Ticket
	if err := row.Scan(
		&t.ID,
		&t.TicketNumber,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.Priority,
		&t.TicketType,
		&t.Department,
		&t.Module,
		&t.DueDate,
		&t.ResolvedAt,
		&t.CreatedBy,
		&t.AssignedTo,
		&t.GroupID,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	result := []domain.Ticket{}
	for rows.Next() {
		ticket, err := scanTicketRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}
