package models

import (
	"time"

	"github.com/google/uuid"
)

// Session types
const (
	SessionTypeStandard = "standard"
	SessionTypeBlind    = "blind"
)

// Session lifecycle statuses
const (
	SessionStatusSetup     = "setup"
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	SessionStatusArchived  = "archived"
)

// Enrollment statuses
const (
	EnrollmentStatusWaiting    = "waiting"
	EnrollmentStatusInProgress = "in_progress"
	EnrollmentStatusCompleted  = "completed"
)

// ValidSessionStatus reports whether s is a recognized session status.
func ValidSessionStatus(s string) bool {
	switch s {
	case SessionStatusSetup, SessionStatusActive, SessionStatusCompleted, SessionStatusArchived:
		return true
	}
	return false
}

// SessionDB represents a tasting session row
type SessionDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key
	Name      string    `json:"name" db:"name"`             // Display name
	Type      string    `json:"type" db:"type"`             // standard or blind
	Status    string    `json:"status" db:"status"`         // setup, active, completed or archived
	CreatedBy uuid.UUID `json:"created_by" db:"created_by"` // Owning arbiter
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// SessionWithCounts is a session row with aggregate bottle/participant counts,
// used by the arbiter listing and the participant-facing available list.
type SessionWithCounts struct {
	SessionDB
	BottleCount      int `json:"bottle_count" db:"bottle_count"`
	ParticipantCount int `json:"participant_count" db:"participant_count"`
}

// BottleDB represents a bottle registered in a session
type BottleDB struct {
	ID           uuid.UUID `json:"id" db:"id"`                       // Primary key
	SessionID    uuid.UUID `json:"session_id" db:"session_id"`       // Owning session
	BottleNumber int       `json:"bottle_number" db:"bottle_number"` // Session-scoped number
	CustomName   *string   `json:"custom_name" db:"custom_name"`     // Optional display name
	WineDetails  *string   `json:"wine_details" db:"wine_details"`   // Opaque payload, never parsed server-side
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
}

// UserSessionDB represents a participant's enrollment in a session
type UserSessionDB struct {
	ID            uuid.UUID `json:"id" db:"id"`                         // Primary key
	UserID        uuid.UUID `json:"user_id" db:"user_id"`               // Enrolled participant
	SessionID     uuid.UUID `json:"session_id" db:"session_id"`         // Session
	Status        string    `json:"status" db:"status"`                 // waiting, in_progress or completed
	CurrentBottle int       `json:"current_bottle" db:"current_bottle"` // Bottle number the participant is on
	JoinedAt      time.Time `json:"joined_at" db:"joined_at"`           // Enrollment timestamp
}

// SessionParticipant is an enrollment row joined with user identity,
// used by the arbiter session detail view.
type SessionParticipant struct {
	UserSessionDB
	Username  string  `json:"username" db:"username"`
	FirstName *string `json:"first_name" db:"first_name"`
	Email     string  `json:"email" db:"email"`
}
