package domain

import "time"

// TicketComment is a threaded reply on a ticket. Internal comments are
// hidden from listings unless the caller opts in.
type TicketComment struct {
	ID         string
	TicketID   string
	UserID     string
	Comment    string
	IsInternal bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TicketAttachment stores metadata for an uploaded file on a ticket.
type TicketAttachment struct {
	ID         string
	TicketID   string
	Filename   string
	FilePath   string
	FileSize   *int64
	MimeType   *string
	UploadedBy string
	CreatedAt  time.Time
}
