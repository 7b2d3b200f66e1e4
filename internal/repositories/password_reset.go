package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

// PasswordResetRepository handles password reset token storage.
type PasswordResetRepository struct {
	db *sqlx.DB
}

func NewPasswordResetRepository(db *sqlx.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// Replace marks every unused token of the user as used and inserts a new
// one, in a single transaction. At most one honorable token per user.
func (r *PasswordResetRepository) Replace(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	invalidate := `UPDATE password_resets SET used = TRUE WHERE user_id = $1 AND used = FALSE`
	if _, err := tx.ExecContext(ctx, invalidate, userID); err != nil {
		logger.Log.Errorw("reset token invalidate failed", "user_id", userID, "error", err)
		return err
	}

	insert := `
		INSERT INTO password_resets (user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	if _, err := tx.ExecContext(ctx, insert, userID, token, expiresAt); err != nil {
		logger.Log.Errorw("reset token insert failed", "user_id", userID, "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Log.Infow("reset token replaced", "user_id", userID, "expires_at", expiresAt)
	return nil
}

// GetValid returns the unused, unexpired token row joined with the owner's
// email, or nil when the token cannot be honored.
func (r *PasswordResetRepository) GetValid(ctx context.Context, token string) (*models.PasswordResetDB, error) {
	query := `
		SELECT pr.id, pr.user_id, pr.token, pr.expires_at, pr.used, pr.created_at, u.email
		FROM password_resets pr
		JOIN users u ON pr.user_id = u.id
		WHERE pr.token = $1 AND pr.used = FALSE AND pr.expires_at > NOW()
	`

	var reset models.PasswordResetDB
	err := r.db.GetContext(ctx, &reset, query, token)

	logger.Log.Infow("reset token lookup",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

// Consume sets the user's new password hash and marks the token used,
// in a single transaction.
func (r *PasswordResetRepository) Consume(ctx context.Context, resetID, userID uuid.UUID, passwordHash string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	updateUser := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, updateUser, userID, passwordHash); err != nil {
		logger.Log.Errorw("password update failed", "user_id", userID, "error", err)
		return err
	}

	markUsed := `UPDATE password_resets SET used = TRUE WHERE id = $1`
	if _, err := tx.ExecContext(ctx, markUsed, resetID); err != nil {
		logger.Log.Errorw("reset token consume failed", "reset_id", resetID, "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Log.Infow("password reset", "user_id", userID)
	return nil
}
