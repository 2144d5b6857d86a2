package service

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/events"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

type fakeTicketRepo struct {
	tickets      map[string]*domain.Ticket
	numberTaken  func(number string) bool
	existsCalls  int
	createdCount int
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[string]*domain.Ticket{}}
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	f.createdCount++
	ticket.ID = "ticket-" + ticket.TicketNumber
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	cp := *ticket
	f.tickets[ticket.ID] = &cp
	return nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, apperrors.NewNotFound("ticket")
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTicketRepo) Update(_ context.Context, id string, update repository.TicketUpdate) (*domain.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, apperrors.NewNotFound("ticket")
	}
	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	if update.Priority != nil {
		t.Priority = *update.Priority
	}
	if update.TicketType != nil {
		t.TicketType = *update.TicketType
	}
	if update.Department != nil {
		t.Department = update.Department
	}
	if update.Module != nil {
		t.Module = update.Module
	}
	if update.DueDate != nil {
		t.DueDate = update.DueDate
	}
	if update.AssignedTo != nil {
		t.AssignedTo = update.AssignedTo
	}
	if update.ResolvedAt != nil {
		t.ResolvedAt = update.ResolvedAt
	}
	t.UpdatedAt = time.Now()
	cp := *t
	return &cp, nil
}

func (f *fakeTicketRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.tickets[id]; !ok {
		return apperrors.NewNotFound("ticket")
	}
	delete(f.tickets, id)
	return nil
}

func (f *fakeTicketRepo) List(_ context.Context, _ repository.TicketFilter) ([]domain.Ticket, error) {
	out := make([]domain.Ticket, 0, len(f.tickets))
	for _, t := range f.tickets {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTicketRepo) ExistsByNumber(_ context.Context, number string) (bool, error) {
	f.existsCalls++
	if f.numberTaken == nil {
		return false, nil
	}
	return f.numberTaken(number), nil
}

func (f *fakeTicketRepo) Stats(_ context.Context, _ time.Time) (*domain.TicketStats, error) {
	return &domain.TicketStats{TotalTickets: int64(len(f.tickets))}, nil
}

type fakeCommentRepo struct {
	comments []domain.TicketComment
}

func (f *fakeCommentRepo) Create(_ context.Context, c *domain.TicketComment) error {
	c.ID = "comment-1"
	c.CreatedAt = time.Now()
	f.comments = append(f.comments, *c)
	return nil
}

func (f *fakeCommentRepo) ListByTicket(_ context.Context, ticketID string, includeInternal bool) ([]domain.TicketComment, error) {
	out := []domain.TicketComment{}
	for _, c := range f.comments {
		if c.TicketID != ticketID {
			continue
		}
		if c.IsInternal && !includeInternal {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type fakeAttachmentRepo struct {
	attachments []domain.TicketAttachment
}

func (f *fakeAttachmentRepo) Create(_ context.Context, a *domain.TicketAttachment) error {
	a.ID = "attachment-1"
	f.attachments = append(f.attachments, *a)
	return nil
}

func (f *fakeAttachmentRepo) ListByTicket(_ context.Context, ticketID string) ([]domain.TicketAttachment, error) {
	out := []domain.TicketAttachment{}
	for _, a := range f.attachments {
		if a.TicketID == ticketID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeHistoryRepo struct {
	entries []domain.TicketHistory
	failing bool
}

func (f *fakeHistoryRepo) Create(_ context.Context, e *domain.TicketHistory) error {
	if f.failing {
		return assert.AnError
	}
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeHistoryRepo) ListByTicket(_ context.Context, ticketID string) ([]domain.TicketHistory, error) {
	out := []domain.TicketHistory{}
	for _, e := range f.entries {
		if e.TicketID == ticketID {
			out = append(out, e)
		}
	}
	return out, nil
}

type capturingDispatcher struct {
	published []events.Event
}

func (d *capturingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *capturingDispatcher) Publish(_ context.Context, e events.Event) error {
	d.published = append(d.published, e)
	return nil
}

type ticketFixture struct {
	service    *TicketService
	tickets    *fakeTicketRepo
	comments   *fakeCommentRepo
	history    *fakeHistoryRepo
	dispatcher *capturingDispatcher
}

func newTicketFixture() *ticketFixture {
	tickets := newFakeTicketRepo()
	comments := &fakeCommentRepo{}
	history := &fakeHistoryRepo{}
	dispatcher := &capturingDispatcher{}
	svc := NewTicketService(TicketDependencies{
		TicketRepo:     tickets,
		CommentRepo:    comments,
		AttachmentRepo: &fakeAttachmentRepo{},
		HistoryRepo:    history,
		Dispatcher:     dispatcher,
	})
	return &ticketFixture{service: svc, tickets: tickets, comments: comments, history: history, dispatcher: dispatcher}
}

func TestCreateTicketGeneratesNumber(t *testing.T) {
	fx := newTicketFixture()
	fixed := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	fx.service.now = func() time.Time { return fixed }

	ticket, err := fx.service.CreateTicket(context.Background(), "user-1", TicketCreateInput{Title: "  Printer broken  ", Description: "no output since this morning"})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^TK-20240315-[0-9A-F]{8}$`), ticket.TicketNumber)
	assert.Equal(t, "Printer broken", ticket.Title)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, domain.TicketPriorityMedium, ticket.Priority)
	assert.Equal(t, domain.TicketTypeSupport, ticket.TicketType)

	require.Len(t, fx.dispatcher.published, 1)
	assert.Equal(t, events.EventTicketCreated, fx.dispatcher.published[0].Type)
}

func TestCreateTicketNumberCollisionRetries(t *testing.T) {
	fx := newTicketFixture()
	fx.tickets.numberTaken = func(string) bool { return true }

	_, err := fx.service.CreateTicket(context.Background(), "user-1", TicketCreateInput{Title: "x", Description: "d"})
	require.Error(t, err)

	var derr *apperrors.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "INTERNAL_ERROR", derr.Code)
	assert.Equal(t, 5, fx.tickets.existsCalls)
	assert.Zero(t, fx.tickets.createdCount)
}

func TestCreateTicketValidation(t *testing.T) {
	fx := newTicketFixture()
	ctx := context.Background()

	_, err := fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "   ", Description: "d"})
	assert.Error(t, err)

	_, err = fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "x", Description: "   "})
	var derr *apperrors.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "VALIDATION_FAILED", derr.Code)

	long := strings.Repeat("a", 256)
	_, err = fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: long, Description: "d"})
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "VALIDATION_FAILED", derr.Code)

	ok := strings.Repeat("a", 255)
	_, err = fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: ok, Description: "d"})
	assert.NoError(t, err)

	_, err = fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "x", Description: "d", Priority: "extreme"})
	assert.Error(t, err)

	_, err = fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "x", Description: "d", TicketType: "nonsense"})
	assert.Error(t, err)

	assert.Equal(t, 1, fx.tickets.createdCount)
}

func TestUpdateTicketRejectsOverlongTitle(t *testing.T) {
	fx := newTicketFixture()
	ctx := context.Background()
	ticket, err := fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	long := strings.Repeat("b", 256)
	_, err = fx.service.UpdateTicket(ctx, "user-1", ticket.ID, TicketUpdateInput{Title: &long})
	var derr *apperrors.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "VALIDATION_FAILED", derr.Code)
}

func TestUpdateTicketRecordsHistory(t *testing.T) {
	fx := newTicketFixture()
	ctx := context.Background()
	ticket, err := fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "t", Description: "original"})
	require.NoError(t, err)

	status := domain.TicketStatusInProgress
	priority := domain.TicketPriorityHigh
	_, err = fx.service.UpdateTicket(ctx, "user-2", ticket.ID, TicketUpdateInput{
		Status:   &status,
		Priority: &priority,
	})
	require.NoError(t, err)

	require.Len(t, fx.history.entries, 2)
	fields := []string{fx.history.entries[0].FieldName, fx.history.entries[1].FieldName}
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "priority")
	assert.Equal(t, "user-2", fx.history.entries[0].ChangedBy)
}

func TestUpdateTicketSkipsHistoryForSystemActor(t *testing.T) {
	fx := newTicketFixture()
	ctx := context.Background()
	ticket, err := fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	status := domain.TicketStatusClosed
	_, err = fx.service.UpdateTicket(ctx, "system", ticket.ID, TicketUpdateInput{Status: &status})
	require.NoError(t, err)
	assert.Empty(t, fx.history.entries)

	status = domain.TicketStatusReopened
	_, err = fx.service.UpdateTicket(ctx, "", ticket.ID, TicketUpdateInput{Status: &status})
	require.NoError(t, err)
	assert.Empty(t, fx.history.entries)
}

func TestUpdateTicketSkipsUnchangedFields(t *testing.T) {
	fx := newTicketFixture()
	ctx := context.Background()
	ticket, err := fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	// same status as the current one: no history row
	status := domain.TicketStatusOpen
	_, err = fx.service.UpdateTicket(ctx, "user-1", ticket.ID, TicketUpdateInput{Status: &status})
	require.NoError(t, err)
	assert.Empty(t, fx.history.entries)
}

func TestUpdateTicketBlankDescriptionIgnored(t *testing.T) {
	fx := newTicketFixture()
	ctx := context.Background()
	ticket, err := fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "t", Description: "keep me"})
	require.NoError(t, err)

	blank := "   "
	updated, err := fx.service.UpdateTicket(ctx, "user-1", ticket.ID, TicketUpdateInput{Description: &blank})
	require.NoError(t, err)

	assert.Equal(t, "keep me", updated.Description)
	assert.Empty(t, fx.history.entries)
}

func TestUpdateTicketStampsResolvedAtOnce(t *testing.T) {
	fx := newTicketFixture()
	ctx := context.Background()
	ticket, err := fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	resolvedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	fx.service.now = func() time.Time { return resolvedTime }

	status := domain.TicketStatusResolved
	updated, err := fx.service.UpdateTicket(ctx, "user-1", ticket.ID, TicketUpdateInput{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated.ResolvedAt)
	assert.Equal(t, resolvedTime, *updated.ResolvedAt)

	// reopen and resolve again later: the original stamp survives
	reopened := domain.TicketStatusReopened
	_, err = fx.service.UpdateTicket(ctx, "user-1", ticket.ID, TicketUpdateInput{Status: &reopened})
	require.NoError(t, err)

	fx.service.now = func() time.Time { return resolvedTime.Add(48 * time.Hour) }
	again, err := fx.service.UpdateTicket(ctx, "user-1", ticket.ID, TicketUpdateInput{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, again.ResolvedAt)
	assert.Equal(t, resolvedTime, *again.ResolvedAt)
}

func TestUpdateTicketPublishesEvents(t *testing.T) {
	fx := newTicketFixture()
	ctx := context.Background()
	ticket, err := fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)
	fx.dispatcher.published = nil

	status := domain.TicketStatusInProgress
	assignee := "user-9"
	_, err = fx.service.UpdateTicket(ctx, "user-1", ticket.ID, TicketUpdateInput{
		Status:     &status,
		AssignedTo: &assignee,
	})
	require.NoError(t, err)

	types := make([]events.EventType, 0, len(fx.dispatcher.published))
	for _, e := range fx.dispatcher.published {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, events.EventTicketStatusChanged)
	assert.Contains(t, types, events.EventTicketAssigned)
}

func TestUpdateTicketEmptyInputIsNoop(t *testing.T) {
	fx := newTicketFixture()
	ctx := context.Background()
	ticket, err := fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	updated, err := fx.service.UpdateTicket(ctx, "user-1", ticket.ID, TicketUpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, updated.ID)
	assert.Empty(t, fx.history.entries)
}

func TestHistoryWriteFailureDoesNotFailUpdate(t *testing.T) {
	fx := newTicketFixture()
	fx.history.failing = true
	ctx := context.Background()
	ticket, err := fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	priority := domain.TicketPriorityUrgent
	_, err = fx.service.UpdateTicket(ctx, "user-1", ticket.ID, TicketUpdateInput{Priority: &priority})
	assert.NoError(t, err)
}

func TestAddCommentRequiresBodyAndTicket(t *testing.T) {
	fx := newTicketFixture()
	ctx := context.Background()
	ticket, err := fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	_, err = fx.service.AddComment(ctx, "user-1", ticket.ID, CommentInput{Comment: "   "})
	assert.Error(t, err)

	_, err = fx.service.AddComment(ctx, "user-1", "missing", CommentInput{Comment: "hello"})
	assert.Error(t, err)

	comment, err := fx.service.AddComment(ctx, "user-1", ticket.ID, CommentInput{Comment: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", comment.Comment)
}

func TestListCommentsFiltersInternal(t *testing.T) {
	fx := newTicketFixture()
	ctx := context.Background()
	ticket, err := fx.service.CreateTicket(ctx, "user-1", TicketCreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	_, err = fx.service.AddComment(ctx, "user-1", ticket.ID, CommentInput{Comment: "public"})
	require.NoError(t, err)
	_, err = fx.service.AddComment(ctx, "user-1", ticket.ID, CommentInput{Comment: "internal note", IsInternal: true})
	require.NoError(t, err)

	visible, err := fx.service.ListComments(ctx, ticket.ID, false)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := fx.service.ListComments(ctx, ticket.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStringPreviewKeepsRuneBoundaries(t *testing.T) {
	assert.Equal(t, "short", stringPreview("short", 120))

	long := strings.Repeat("ü", 130)
	preview := stringPreview(long, 120)
	assert.Equal(t, strings.Repeat("ü", 120), preview)
	assert.True(t, utf8.ValidString(preview))
}
