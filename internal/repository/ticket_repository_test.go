package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/erp-backend/internal/domain"
)

var ticketColumnNames = []string{
	"id", "ticket_number", "title", "description", "status", "priority", "ticket_type",
	"department", "module", "due_date", "resolved_at", "created_by", "assigned_to", "group_id",
	"created_at", "updated_at",
}

func ticketRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(ticketColumnNames).AddRow(
		"t-1", "TK-20240315-ABCDEF01", "Printer down", "The office printer is down.",
		domain.TicketStatusOpen, domain.TicketPriorityMedium, domain.TicketTypeSupport,
		(*string)(nil), (*string)(nil), (*time.Time)(nil), (*time.Time)(nil),
		"u-1", (*string)(nil), (*string)(nil), now, now,
	)
}

func newTicketMock(t *testing.T) (pgxmock.PgxPoolIface, TicketRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewTicketRepository(mock)
}

func TestTicketRepositoryListAppliesFilters(t *testing.T) {
	mock, repo := newTicketMock(t)
	now := time.Now()

	status := domain.TicketStatusOpen
	search := "printer"
	mock.ExpectQuery(`SELECT .+ FROM tickets WHERE status = \$1 AND \(title ILIKE \$2 OR description ILIKE \$3 OR ticket_number ILIKE \$4\) ORDER BY priority ASC LIMIT 20 OFFSET 10`).
		WithArgs(status, "%printer%", "%printer%", "%printer%").
		WillReturnRows(ticketRow(now))

	tickets, err := repo.List(context.Background(), TicketFilter{
		Status:    &status,
		Search:    &search,
		SortBy:    "priority",
		SortOrder: "asc",
		Limit:     20,
		Offset:    10,
	})
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "TK-20240315-ABCDEF01", tickets[0].TicketNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepositoryListRejectsUnknownSortColumn(t *testing.T) {
	mock, repo := newTicketMock(t)

	// An unlisted sort_by must not reach the SQL; the query falls back to
	// created_at DESC with the default page size.
	mock.ExpectQuery(`SELECT .+ FROM tickets ORDER BY created_at DESC LIMIT 50 OFFSET 0`).
		WillReturnRows(pgxmock.NewRows(ticketColumnNames))

	tickets, err := repo.List(context.Background(), TicketFilter{
		SortBy: "1; DROP TABLE tickets",
	})
	require.NoError(t, err)
	assert.Empty(t, tickets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepositoryUpdateBuildsPartialStatement(t *testing.T) {
	mock, repo := newTicketMock(t)
	now := time.Now()

	status := domain.TicketStatusResolved
	mock.ExpectQuery(`UPDATE tickets SET updated_at = NOW\(\), status = \$1 WHERE id = \$2 RETURNING`).
		WithArgs(status, "t-1").
		WillReturnRows(ticketRow(now))

	ticket, err := repo.Update(context.Background(), "t-1", TicketUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "t-1", ticket.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepositoryDeleteMissingRow(t *testing.T) {
	mock, repo := newTicketMock(t)

	mock.ExpectExec(`DELETE FROM tickets WHERE id=\$1`).
		WithArgs("nope").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepositoryExistsByNumber(t *testing.T) {
	mock, repo := newTicketMock(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM tickets WHERE ticket_number=\$1\)`).
		WithArgs("TK-20240315-ABCDEF01").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByNumber(context.Background(), "TK-20240315-ABCDEF01")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepositoryStats(t *testing.T) {
	mock, repo := newTicketMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\),`).
		WithArgs(now).
		WillReturnRows(pgxmock.NewRows([]string{
			"total", "open", "in_progress", "resolved", "closed", "urgent", "high", "overdue",
		}).AddRow(int64(12), int64(4), int64(3), int64(2), int64(3), int64(1), int64(2), int64(5)))

	stats, err := repo.Stats(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalTickets)
	assert.Equal(t, int64(4), stats.OpenTickets)
	assert.Equal(t, int64(5), stats.OverdueTickets)
	assert.NoError(t, mock.ExpectationsWereMet())
}
