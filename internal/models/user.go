package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleParticipant = "participant"
	RoleArbiter     = "arbiter"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID                 uuid.UUID  `json:"id" db:"id"`                                       // Primary key
	Username           string     `json:"username" db:"username"`                           // Unique username
	Email              string     `json:"email" db:"email"`                                 // Unique email
	PasswordHash       string     `json:"-" db:"password_hash"`                             // Bcrypt hash, or setup token placeholder
	FirstName          *string    `json:"first_name" db:"first_name"`                       // Optional first name
	LastName           *string    `json:"last_name" db:"last_name"`                         // Optional last name
	Role               string     `json:"role" db:"role"`                                   // participant or arbiter
	IsActive           bool       `json:"is_active" db:"is_active"`                         // Account enabled flag
	NeedsPasswordSetup bool       `json:"needs_password_setup" db:"needs_password_setup"`   // True until an invited participant sets a password
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`                       // Creation timestamp
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`                       // Last update timestamp
	LastLogin          *time.Time `json:"last_login,omitempty" db:"last_login"`             // Last successful login
}

// ParticipantWithStats is a participant row joined with tasting aggregates,
// used by the arbiter user listing.
type ParticipantWithStats struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	Username           string    `json:"username" db:"username"`
	Email              string    `json:"email" db:"email"`
	FirstName          *string   `json:"first_name" db:"first_name"`
	LastName           *string   `json:"last_name" db:"last_name"`
	Role               string    `json:"role" db:"role"`
	IsActive           bool      `json:"is_active" db:"is_active"`
	NeedsPasswordSetup bool      `json:"needs_password_setup" db:"needs_password_setup"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	TastingCount       int       `json:"-" db:"tasting_count"`
	AverageScore       *float64  `json:"-" db:"average_score"`
}

// PasswordResetDB represents a password reset token row
type PasswordResetDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	Token     string    `json:"-" db:"token"`               // Opaque random token
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"` // Expiry timestamp
	Used      bool      `json:"used" db:"used"`             // Consumed flag
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	Email     string    `json:"-" db:"email"`               // Owner email (populated by join reads)
}
