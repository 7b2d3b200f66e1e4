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

const sessionColumns = `id, name, type, status, created_by, created_at, updated_at`

// SessionReadRepository handles tasting session read operations.
type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// GetByID returns the session with the given id, or nil when absent.
func (r *SessionReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SessionDB, error) {
	query := `SELECT ` + sessionColumns + ` FROM tasting_sessions WHERE id = $1`

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, id)

	logger.Log.Infow("session get",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListAll returns every session, newest first, with bottle and participant counts.
func (r *SessionReadRepository) ListAll(ctx context.Context) ([]models.SessionWithCounts, error) {
	query := `
		SELECT s.id, s.name, s.type, s.status, s.created_by, s.created_at, s.updated_at,
		       (SELECT COUNT(*) FROM bottles b WHERE b.session_id = s.id) AS bottle_count,
		       (SELECT COUNT(*) FROM user_sessions us WHERE us.session_id = s.id) AS participant_count
		FROM tasting_sessions s
		ORDER BY s.created_at DESC
	`

	var sessions []models.SessionWithCounts
	err := r.db.SelectContext(ctx, &sessions, query)

	logger.Log.Infow("session list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(sessions),
		"error", err,
	)

	return sessions, err
}

// ListActive returns sessions in active status with their bottle counts,
// for the participant-facing available list.
func (r *SessionReadRepository) ListActive(ctx context.Context) ([]models.SessionWithCounts, error) {
	query := `
		SELECT s.id, s.name, s.type, s.status, s.created_by, s.created_at, s.updated_at,
		       (SELECT COUNT(*) FROM bottles b WHERE b.session_id = s.id) AS bottle_count,
		       (SELECT COUNT(*) FROM user_sessions us WHERE us.session_id = s.id) AS participant_count
		FROM tasting_sessions s
		WHERE s.status = $1
		ORDER BY s.created_at DESC
	`

	var sessions []models.SessionWithCounts
	err := r.db.SelectContext(ctx, &sessions, query, models.SessionStatusActive)

	logger.Log.Infow("active session list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(sessions),
		"error", err,
	)

	return sessions, err
}

// SessionWriteRepository handles tasting session write operations.
type SessionWriteRepository struct {
	db *sqlx.DB
}

func NewSessionWriteRepository(db *sqlx.DB) *SessionWriteRepository {
	return &SessionWriteRepository{db: db}
}

// Save inserts a new session in setup status and returns the created row.
func (r *SessionWriteRepository) Save(ctx context.Context, name, sessionType string, createdBy uuid.UUID) (*models.SessionDB, error) {
	query := `
		INSERT INTO tasting_sessions (name, type, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + sessionColumns

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, name, sessionType, createdBy)

	logger.Log.Infow("session save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, sessionType, createdBy},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &session, nil
}

// SetStatus updates the session status. Activation demotes every other
// active session back to setup in the same transaction, so that at most
// one session reads as active. Returns false when the session is absent.
func (r *SessionWriteRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if status == models.SessionStatusActive {
		demote := `
			UPDATE tasting_sessions
			SET status = $1, updated_at = NOW()
			WHERE status = $2 AND id != $3
		`
		if _, err := tx.ExecContext(ctx, demote, models.SessionStatusSetup, models.SessionStatusActive, id); err != nil {
			logger.Log.Errorw("session demote failed", "session_id", id, "error", err)
			return false, err
		}
	}

	update := `UPDATE tasting_sessions SET status = $2, updated_at = NOW() WHERE id = $1`
	res, err := tx.ExecContext(ctx, update, id, status)
	if err != nil {
		logger.Log.Errorw("session status update failed", "session_id", id, "error", err)
		return false, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		// Nothing to commit; the demotion must not stick for a missing target.
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	logger.Log.Infow("session status set", "session_id", id, "status", status)
	return true, nil
}

// Delete removes a session with its bottles and enrollments in one
// transaction, in dependency order. Tastings are left untouched: they
// reference users and free-text bottle identifiers, not sessions.
// Returns false when the session did not exist.
func (r *SessionWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bottles WHERE session_id = $1`, id); err != nil {
		logger.Log.Errorw("session bottles delete failed", "session_id", id, "error", err)
		return false, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM user_sessions WHERE session_id = $1`, id); err != nil {
		logger.Log.Errorw("session enrollments delete failed", "session_id", id, "error", err)
		return false, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM tasting_sessions WHERE id = $1`, id)
	if err != nil {
		logger.Log.Errorw("session delete failed", "session_id", id, "error", err)
		return false, err
	}
	rowsAffected, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return false, err
	}

	logger.Log.Infow("session deleted", "session_id", id, "result", rowsAffected)
	return rowsAffected > 0, nil
}
