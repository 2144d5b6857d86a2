package domain

import "time"

// TicketHistory is an append-only audit trail entry recording a single
// field change on a ticket. Rows are never mutated after insert.
type TicketHistory struct {
	ID        string
	TicketID  string
	FieldName string
	OldValue  *string
	NewValue  *string
	ChangedBy string
	CreatedAt time.Time
}

// TicketStats aggregates ticket counts for the summary endpoint.
type TicketStats struct {
	TotalTickets        int64
	OpenTickets         int64
	InProgressTickets   int64
	ResolvedTickets     int64
	ClosedTickets       int64
	UrgentTickets       int64
	HighPriorityTickets int64
	OverdueTickets      int64
}
