package dto

import (
	"time"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Priority    domain.TicketPriority `json:"priority"`
	TicketType  domain.TicketType     `json:"ticket_type"`
	Department  *string               `json:"department"`
	Module      *string               `json:"module"`
	DueDate     *time.Time            `json:"due_date"`
	AssignedTo  *string               `json:"assigned_to"`
	GroupID     *string               `json:"group_id"`
}

// UpdateTicketRequest payload. Absent fields stay untouched.
type UpdateTicketRequest struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Status      *domain.TicketStatus   `json:"status"`
	Priority    *domain.TicketPriority `json:"priority"`
	TicketType  *domain.TicketType     `json:"ticket_type"`
	Department  *string                `json:"department"`
	Module      *string                `json:"module"`
	DueDate     *time.Time             `json:"due_date"`
	AssignedTo  *string                `json:"assigned_to"`
}

// TicketResponse full ticket info.
type TicketResponse struct {
	ID           string                `json:"id"`
	TicketNumber string                `json:"ticket_number"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Status       domain.TicketStatus   `json:"status"`
	Priority     domain.TicketPriority `json:"priority"`
	TicketType   domain.TicketType     `json:"ticket_type"`
	Department   *string               `json:"department"`
	Module       *string               `json:"module"`
	DueDate      *time.Time            `json:"due_date"`
	ResolvedAt   *time.Time            `json:"resolved_at"`
	CreatedBy    string                `json:"created_by"`
	AssignedTo   *string               `json:"assigned_to"`
	GroupID      *string               `json:"group_id"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// NewTicketResponse maps a ticket.
func NewTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:           t.ID,
		TicketNumber: t.TicketNumber,
		Title:        t.Title,
		Description:  t.Description,
		Status:       t.Status,
		Priority:     t.Priority,
		TicketType:   t.TicketType,
		Department:   t.Department,
		Module:       t.Module,
		DueDate:      t.DueDate,
		ResolvedAt:   t.ResolvedAt,
		CreatedBy:    t.CreatedBy,
		AssignedTo:   t.AssignedTo,
		GroupID:      t.GroupID,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Comment    string `json:"comment"`
	IsInternal bool   `json:"is_internal"`
}

// CommentResponse represents a thread comment.
type CommentResponse struct {
	ID         string    `json:"id"`
	TicketID   string    `json:"ticket_id"`
	UserID     string    `json:"user_id"`
	Comment    string    `json:"comment"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewCommentResponse maps a comment.
func NewCommentResponse(c *domain.TicketComment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		TicketID:   c.TicketID,
		UserID:     c.UserID,
		Comment:    c.Comment,
		IsInternal: c.IsInternal,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// CreateAttachmentRequest describes attachment metadata input.
type CreateAttachmentRequest struct {
	Filename string  `json:"filename"`
	FilePath string  `json:"file_path"`
	FileSize *int64  `json:"file_size"`
	MimeType *string `json:"mime_type"`
}

// AttachmentResponse metadata.
type AttachmentResponse struct {
	ID         string    `json:"id"`
	TicketID   string    `json:"ticket_id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	FileSize   *int64    `json:"file_size"`
	MimeType   *string   `json:"mime_type"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAttachmentResponse maps an attachment.
func NewAttachmentResponse(a *domain.TicketAttachment) AttachmentResponse {
	return AttachmentResponse{
		ID:         a.ID,
		TicketID:   a.TicketID,
		Filename:   a.Filename,
		FilePath:   a.FilePath,
		FileSize:   a.FileSize,
		MimeType:   a.MimeType,
		UploadedBy: a.UploadedBy,
		CreatedAt:  a.CreatedAt,
	}
}

// HistoryResponse is one ledger entry.
type HistoryResponse struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	FieldName string    `json:"field_name"`
	OldValue  *string   `json:"old_value"`
	NewValue  *string   `json:"new_value"`
	ChangedBy string    `json:"changed_by"`
	CreatedAt time.Time `json:"created_at"`
}

// NewHistoryResponse maps a history entry.
func NewHistoryResponse(h *domain.TicketHistory) HistoryResponse {
	return HistoryResponse{
		ID:        h.ID,
		TicketID:  h.TicketID,
		FieldName: h.FieldName,
		OldValue:  h.OldValue,
		NewValue:  h.NewValue,
		ChangedBy: h.ChangedBy,
		CreatedAt: h.CreatedAt,
	}
}

// TicketStatsResponse summary counters.
type TicketStatsResponse struct {
	TotalTickets        int64 `json:"total_tickets"`
	OpenTickets         int64 `json:"open_tickets"`
	InProgressTickets   int64 `json:"in_progress_tickets"`
	ResolvedTickets     int64 `json:"resolved_tickets"`
	ClosedTickets       int64 `json:"closed_tickets"`
	UrgentTickets       int64 `json:"urgent_tickets"`
	HighPriorityTickets int64 `json:"high_priority_tickets"`
	OverdueTickets      int64 `json:"overdue_tickets"`
}

// NewTicketStatsResponse maps stats.
func NewTicketStatsResponse(s *domain.TicketStats) TicketStatsResponse {
	return TicketStatsResponse{
		TotalTickets:        s.TotalTickets,
		OpenTickets:         s.OpenTickets,
		InProgressTickets:   s.InProgressTickets,
		ResolvedTickets:     s.ResolvedTickets,
		ClosedTickets:       s.ClosedTickets,
		UrgentTickets:       s.UrgentTickets,
		HighPriorityTickets: s.HighPriorityTickets,
		OverdueTickets:      s.OverdueTickets,
	}
}
