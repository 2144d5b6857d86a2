package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/events"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// ticketNumberAttempts bounds the collision retry loop for generated numbers.
const ticketNumberAttempts = 5

// maxTicketTitleLength caps ticket titles, counted in runes.
const maxTicketTitleLength = 255

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets     repository.TicketRepository
	comments    repository.TicketCommentRepository
	attachments repository.TicketAttachmentRepository
	history     repository.TicketHistoryRepository
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	now         func() time.Time
}

// TicketDependencies bundles repositories for ticket service.
type TicketDependencies struct {
	TicketRepo     repository.TicketRepository
	CommentRepo    repository.TicketCommentRepository
	AttachmentRepo repository.TicketAttachmentRepository
	HistoryRepo    repository.TicketHistoryRepository
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Priority    domain.TicketPriority
	TicketType  domain.TicketType
	Department  *string
	Module      *string
	DueDate     *time.Time
	AssignedTo  *string
	GroupID     *string
}

// TicketUpdateInput describes a partial ticket update. Nil fields are
// untouched.
type TicketUpdateInput struct {
	Title       *string
	Description *string
	Status      *domain.TicketStatus
	Priority    *domain.TicketPriority
	TicketType  *domain.TicketType
	Department  *string
	Module      *string
	DueDate     *time.Time
	AssignedTo  *string
}

// CommentInput describes a new ticket comment.
type CommentInput struct {
	Comment    string
	IsInternal bool
}

// AttachmentInput defines attachment metadata.
type AttachmentInput struct {
	Filename string
	FilePath string
	FileSize *int64
	MimeType *string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		tickets:     deps.TicketRepo,
		comments:    deps.CommentRepo,
		attachments: deps.AttachmentRepo,
		history:     deps.HistoryRepo,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateTicket creates a ticket on behalf of actorID.
func (s *TicketService) CreateTicket(ctx context.Context, actorID string, input TicketCreateInput) (*domain.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}
	if utf8.RuneCountInString(title) > maxTicketTitleLength {
		return nil, apperrors.NewValidationError("title must be at most 255 characters", nil)
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, apperrors.NewValidationError("description is required", nil)
	}
	if actorID == "" {
		return nil, apperrors.NewUnauthorized("actor required")
	}

	ticket := &domain.Ticket{
		Title:       title,
		Description: description,
		Status:      domain.TicketStatusOpen,
		Priority:    input.Priority,
		TicketType:  input.TicketType,
		Department:  input.Department,
		Module:      input.Module,
		DueDate:     input.DueDate,
		CreatedBy:   actorID,
		AssignedTo:  input.AssignedTo,
		GroupID:     input.GroupID,
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}
	if ticket.TicketType == "" {
		ticket.TicketType = domain.TicketTypeSupport
	}
	if !ticket.Priority.Valid() {
		return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": input.Priority})
	}
	if !ticket.TicketType.Valid() {
		return nil, apperrors.NewValidationError("invalid ticket type", map[string]any{"ticket_type": input.TicketType})
	}

	number, err := s.generateTicketNumber(ctx)
	if err != nil {
		return nil, err
	}
	ticket.TicketNumber = number

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload: events.TicketCreatedPayload{
			TicketNumber: ticket.TicketNumber,
			Priority:     ticket.Priority,
			Title:        ticket.Title,
		},
	})
	return ticket, nil
}

// GetTicket fetches a ticket by id.
func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// ListTickets returns tickets matching the filter.
func (s *TicketService) ListTickets(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// UpdateTicket applies a partial update, recording one history row per
// changed field. Histories are best effort and never fail the update.
func (s *TicketService) UpdateTicket(ctx context.Context, actorID, ticketID string, input TicketUpdateInput) (*domain.Ticket, error) {
	existing, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	update := repository.TicketUpdate{}
	changes := []domain.TicketHistory{}
	record := func(field, oldVal, newVal string) {
		if oldVal == newVal {
			return
		}
		old, nw := oldVal, newVal
		changes = append(changes, domain.TicketHistory{
			TicketID:  ticketID,
			FieldName: field,
			OldValue:  &old,
			NewValue:  &nw,
			ChangedBy: actorID,
		})
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title cannot be blank", nil)
		}
		if utf8.RuneCountInString(title) > maxTicketTitleLength {
			return nil, apperrors.NewValidationError("title must be at most 255 characters", nil)
		}
		update.Title = &title
		record("title", existing.Title, title)
	}
	if input.Description != nil {
		// blank descriptions are ignored rather than wiping the field
		desc := strings.TrimSpace(*input.Description)
		if desc != "" && desc != existing.Description {
			update.Description = &desc
			record("description", existing.Description, desc)
		}
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": *input.Status})
		}
		update.Status = input.Status
		record("status", string(existing.Status), string(*input.Status))
		if *input.Status == domain.TicketStatusResolved && existing.ResolvedAt == nil {
			resolvedAt := s.now().UTC()
			update.ResolvedAt = &resolvedAt
		}
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": *input.Priority})
		}
		update.Priority = input.Priority
		record("priority", string(existing.Priority), string(*input.Priority))
	}
	if input.TicketType != nil {
		if !input.TicketType.Valid() {
			return nil, apperrors.NewValidationError("invalid ticket type", map[string]any{"ticket_type": *input.TicketType})
		}
		update.TicketType = input.TicketType
		record("ticket_type", string(existing.TicketType), string(*input.TicketType))
	}
	if input.Department != nil {
		update.Department = input.Department
		record("department", derefOr(existing.Department, ""), *input.Department)
	}
	if input.Module != nil {
		update.Module = input.Module
		record("module", derefOr(existing.Module, ""), *input.Module)
	}
	if input.DueDate != nil {
		update.DueDate = input.DueDate
		oldDue := ""
		if existing.DueDate != nil {
			oldDue = existing.DueDate.UTC().Format(time.RFC3339)
		}
		record("due_date", oldDue, input.DueDate.UTC().Format(time.RFC3339))
	}
	if input.AssignedTo != nil {
		update.AssignedTo = input.AssignedTo
		record("assigned_to", derefOr(existing.AssignedTo, ""), *input.AssignedTo)
	}

	if update.Empty() {
		return existing, nil
	}

	updated, err := s.tickets.Update(ctx, ticketID, update)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.recordHistory(ctx, actorID, changes)
	s.publishUpdateEvents(ctx, actorID, existing, updated, update)
	return updated, nil
}

// DeleteTicket removes a ticket. Comments, attachments and history go with
// it through the schema cascade.
func (s *TicketService) DeleteTicket(ctx context.Context, ticketID string) error {
	if err := s.tickets.Delete(ctx, ticketID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// AddComment appends a comment to a ticket.
func (s *TicketService) AddComment(ctx context.Context, actorID, ticketID string, input CommentInput) (*domain.TicketComment, error) {
	body := strings.TrimSpace(input.Comment)
	if body == "" {
		return nil, apperrors.NewValidationError("comment is required", nil)
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	comment := &domain.TicketComment{
		TicketID:   ticket.ID,
		UserID:     actorID,
		Comment:    body,
		IsInternal: input.IsInternal,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCommentAdded,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload: events.TicketCommentAddedPayload{
			CommentID:   comment.ID,
			IsInternal:  comment.IsInternal,
			BodyPreview: stringPreview(comment.Comment, 120),
		},
	})
	return comment, nil
}

// ListComments returns a ticket's comments oldest first.
func (s *TicketService) ListComments(ctx context.Context, ticketID string, includeInternal bool) ([]domain.TicketComment, error) {
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		return nil, apperrors.MapError(err)
	}
	comments, err := s.comments.ListByTicket(ctx, ticketID, includeInternal)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return comments, nil
}

// AddAttachment stores attachment metadata for a ticket.
func (s *TicketService) AddAttachment(ctx context.Context, actorID, ticketID string, input AttachmentInput) (*domain.TicketAttachment, error) {
	if strings.TrimSpace(input.Filename) == "" {
		return nil, apperrors.NewValidationError("filename is required", nil)
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	att := &domain.TicketAttachment{
		TicketID:   ticket.ID,
		Filename:   input.Filename,
		FilePath:   input.FilePath,
		FileSize:   input.FileSize,
		MimeType:   input.MimeType,
		UploadedBy: actorID,
	}
	if err := s.attachments.Create(ctx, att); err != nil {
		return nil, apperrors.MapError(err)
	}
	return att, nil
}

// ListAttachments returns attachment metadata for a ticket.
func (s *TicketService) ListAttachments(ctx context.Context, ticketID string) ([]domain.TicketAttachment, error) {
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		return nil, apperrors.MapError(err)
	}
	atts, err := s.attachments.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return atts, nil
}

// ListHistory returns the change ledger newest first.
func (s *TicketService) ListHistory(ctx context.Context, ticketID string) ([]domain.TicketHistory, error) {
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		return nil, apperrors.MapError(err)
	}
	history, err := s.history.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return history, nil
}

// Stats aggregates ticket counters.
func (s *TicketService) Stats(ctx context.Context) (*domain.TicketStats, error) {
	stats, err := s.tickets.Stats(ctx, s.now().UTC())
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return stats, nil
}

// generateTicketNumber builds a TK-YYYYMMDD-XXXXXXXX number and retries on
// the rare collision.
func (s *TicketService) generateTicketNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < ticketNumberAttempts; attempt++ {
		suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
		number := fmt.Sprintf("TK-%s-%s", s.now().UTC().Format("20060102"), suffix)
		exists, err := s.tickets.ExistsByNumber(ctx, number)
		if err != nil {
			return "", apperrors.MapError(err)
		}
		if !exists {
			return number, nil
		}
	}
	return "", apperrors.NewInternalError(fmt.Errorf("ticket number collision retries exhausted"))
}

// recordHistory writes the ledger rows. System-originated and anonymous
// changes are not recorded, and a failed write only logs a warning.
func (s *TicketService) recordHistory(ctx context.Context, actorID string, changes []domain.TicketHistory) {
	if actorID == "" || actorID == "system" {
		return
	}
	for i := range changes {
		if err := s.history.Create(ctx, &changes[i]); err != nil {
			s.logger.Warn("ticket history write failed",
				zap.String("ticket_id", changes[i].TicketID),
				zap.String("field", changes[i].FieldName),
				zap.Error(err))
		}
	}
}

func (s *TicketService) publishUpdateEvents(ctx context.Context, actorID string, before, after *domain.Ticket, update repository.TicketUpdate) {
	if update.Status != nil && before.Status != after.Status {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketStatusChanged,
			TicketID: after.ID,
			ActorID:  actorID,
			Payload: events.TicketStatusChangedPayload{
				OldStatus: before.Status,
				NewStatus: after.Status,
			},
		})
	}
	if update.Priority != nil && before.Priority != after.Priority {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketPriorityChanged,
			TicketID: after.ID,
			ActorID:  actorID,
			Payload: events.TicketPriorityChangedPayload{
				OldPriority: before.Priority,
				NewPriority: after.Priority,
			},
		})
	}
	if update.AssignedTo != nil {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketAssigned,
			TicketID: after.ID,
			ActorID:  actorID,
			Payload: events.TicketAssignedPayload{
				AssignedTo: after.AssignedTo,
				GroupID:    after.GroupID,
			},
		})
	}
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = s.now().UTC()
	_ = s.dispatcher.Publish(ctx, event)
}

// stringPreview truncates on a rune boundary so multi-byte characters are
// never split mid-sequence.
func stringPreview(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func derefOr(val *string, fallback string) string {
	if val == nil {
		return fallback
	}
	return *val
}
