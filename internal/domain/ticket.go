package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
	TicketStatusReopened   TicketStatus = "reopened"
)

// Valid reports whether the status is one of the enumerated values.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed, TicketStatusReopened:
		return true
	}
	return false
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// Valid reports whether the priority is one of the enumerated values.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// TicketType classifies the nature of a request.
type TicketType string

const (
	TicketTypeBug            TicketType = "bug"
	TicketTypeFeatureRequest TicketType = "feature_request"
	TicketTypeSupport        TicketType = "support"
	TicketTypeImprovement    TicketType = "improvement"
	TicketTypeQuestion       TicketType = "question"
)

// Valid reports whether the type is one of the enumerated values.
func (t TicketType) Valid() bool {
	switch t {
	case TicketTypeBug, TicketTypeFeatureRequest, TicketTypeSupport, TicketTypeImprovement, TicketTypeQuestion:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID           string
	TicketNumber string
	Title        string
	Description  string
	Status       TicketStatus
	Priority     TicketPriority
	TicketType   TicketType
	Department   *string
	Module       *string
	DueDate      *time.Time
	ResolvedAt   *time.Time
	CreatedBy    string
	AssignedTo   *string
	GroupID      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
