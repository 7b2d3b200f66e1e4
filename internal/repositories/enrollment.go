package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

const enrollmentColumns = `id, user_id, session_id, status, current_bottle, joined_at`

// EnrollmentReadRepository handles user-session enrollment reads.
type EnrollmentReadRepository struct {
	db *sqlx.DB
}

func NewEnrollmentReadRepository(db *sqlx.DB) *EnrollmentReadRepository {
	return &EnrollmentReadRepository{db: db}
}

// Get returns the enrollment of the user in the session, or nil when the
// user never joined it.
func (r *EnrollmentReadRepository) Get(ctx context.Context, userID, sessionID uuid.UUID) (*models.UserSessionDB, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM user_sessions WHERE user_id = $1 AND session_id = $2`

	var enrollment models.UserSessionDB
	err := r.db.GetContext(ctx, &enrollment, query, userID, sessionID)

	logger.Log.Infow("enrollment get",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, sessionID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ListBySession returns the session's enrollments joined with participant
// identity, in join order.
func (r *EnrollmentReadRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.SessionParticipant, error) {
	query := `
		SELECT us.id, us.user_id, us.session_id, us.status, us.current_bottle, us.joined_at,
		       u.username, u.first_name, u.email
		FROM user_sessions us
		JOIN users u ON us.user_id = u.id
		WHERE us.session_id = $1
		ORDER BY us.joined_at
	`

	var participants []models.SessionParticipant
	err := r.db.SelectContext(ctx, &participants, query, sessionID)

	logger.Log.Infow("enrollment list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID},
		"count", len(participants),
		"error", err,
	)

	return participants, err
}

// EnrollmentWriteRepository handles user-session enrollment writes.
type EnrollmentWriteRepository struct {
	db *sqlx.DB
}

func NewEnrollmentWriteRepository(db *sqlx.DB) *EnrollmentWriteRepository {
	return &EnrollmentWriteRepository{db: db}
}

// Save inserts an enrollment and returns the created row.
func (r *EnrollmentWriteRepository) Save(ctx context.Context, userID, sessionID uuid.UUID, status string, currentBottle int) (*models.UserSessionDB, error) {
	query := `
		INSERT INTO user_sessions (user_id, session_id, status, current_bottle, joined_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + enrollmentColumns

	var enrollment models.UserSessionDB
	err := r.db.GetContext(ctx, &enrollment, query, userID, sessionID, status, currentBottle)

	logger.Log.Infow("enrollment save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, sessionID, status},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}
