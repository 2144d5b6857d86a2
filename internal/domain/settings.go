package domain

import "time"

// SystemSetting is the single row of system-wide toggles. It is created on
// first read with defaults when absent.
type SystemSetting struct {
	ID         string
	AutoBackup bool
	APIAccess  bool
	DebugMode  bool
	CreatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Group is a named collection of users that a ticket can be routed to.
type Group struct {
	ID          string
	Name        string
	Description *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
