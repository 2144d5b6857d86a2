package domain

import "time"

// User is the authentication record. Application-level data lives on the
// companion Profile row sharing the same id.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	IsActive     bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the application-level user record.
type Profile struct {
	ID            string
	Email         string
	FirstName     *string
	LastName      *string
	AvatarURL     *string
	Bio           *string
	JobTitle      *string
	Phone         *string
	Status        *string
	LastLogin     *time.Time
	AccountLocked bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DisplayName returns a human readable name, falling back to the email.
func (p *Profile) DisplayName() string {
	if p == nil {
		return "Unknown User"
	}
	if p.FirstName != nil && p.LastName != nil {
		return *p.FirstName + " " + *p.LastName
	}
	return p.Email
}

// UserPreference holds per-user notification and display settings.
type UserPreference struct {
	ID                 string
	UserID             string
	EmailNotifications bool
	PushNotifications  bool
	ProjectUpdates     bool
	TaskAssignments    bool
	SystemMaintenance  bool
	DarkMode           bool
	CompactView        bool
	Language           string
	Timezone           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
