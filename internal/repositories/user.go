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

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `id, username, email, password_hash, first_name, last_name, role,
	is_active, needs_password_setup, created_at, updated_at, last_login`

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("user get by id",
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
	return &user, nil
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user get by email",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsernameOrEmail reports whether a user with the username or email exists.
func (r *UserReadRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username, email)

	logger.Log.Infow("user exists check",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ListParticipantsWithStats returns all participant accounts joined with
// their tasting count and average score.
func (r *UserReadRepository) ListParticipantsWithStats(ctx context.Context) ([]models.ParticipantWithStats, error) {
	query := `
		SELECT u.id, u.username, u.email, u.first_name, u.last_name, u.role,
		       u.is_active, u.needs_password_setup, u.created_at,
		       COUNT(t.id) AS tasting_count,
		       AVG(t.final_score) AS average_score
		FROM users u
		LEFT JOIN tastings t ON u.id = t.user_id
		WHERE u.role = $1
		GROUP BY u.id, u.username, u.email, u.first_name, u.last_name, u.role,
		         u.is_active, u.needs_password_setup, u.created_at
		ORDER BY u.created_at DESC
	`

	var users []models.ParticipantWithStats
	err := r.db.SelectContext(ctx, &users, query, models.RoleParticipant)

	logger.Log.Infow("participant list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(users),
		"error", err,
	)

	return users, err
}

// GetForSetup returns the user with the given email that still needs
// password setup, or nil when no such account exists.
func (r *UserReadRepository) GetForSetup(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND needs_password_setup = TRUE`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user get for setup",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the created row.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string, firstName, lastName *string, role string, needsPasswordSetup bool) (*models.UserDB, error) {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, role, needs_password_setup, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + userColumns

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email, passwordHash, firstName, lastName, role, needsPasswordSetup)

	logger.Log.Infow("user save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email, role},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SeedArbiter inserts the arbiter account unless one with the same
// username already exists. Returns true when a row was inserted.
func (r *UserWriteRepository) SeedArbiter(ctx context.Context, username, email, passwordHash string) (bool, error) {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, 'Account', 'Arbiter', $4, NOW(), NOW())
		ON CONFLICT (username) DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query, username, email, passwordHash, models.RoleArbiter)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("arbiter seed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// UpdateLastLogin stamps the user's last successful login.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET last_login = NOW() WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)

	logger.Log.Infow("user last login update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	return err
}

// SetPassword replaces the user's password hash and clears the
// needs_password_setup flag.
func (r *UserWriteRepository) SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, needs_password_setup = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, passwordHash)

	logger.Log.Infow("user password update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	return err
}

// DeleteWithTastings removes a user and all of their tastings in one
// transaction. Returns false when the user did not exist.
func (r *UserWriteRepository) DeleteWithTastings(ctx context.Context, id uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tastings WHERE user_id = $1`, id); err != nil {
		logger.Log.Errorw("user tastings delete failed", "user_id", id, "error", err)
		return false, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM password_resets WHERE user_id = $1`, id); err != nil {
		logger.Log.Errorw("user resets delete failed", "user_id", id, "error", err)
		return false, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM user_sessions WHERE user_id = $1`, id); err != nil {
		logger.Log.Errorw("user enrollments delete failed", "user_id", id, "error", err)
		return false, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		logger.Log.Errorw("user delete failed", "user_id", id, "error", err)
		return false, err
	}
	rowsAffected, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return false, err
	}

	logger.Log.Infow("user deleted", "user_id", id, "result", rowsAffected)
	return rowsAffected > 0, nil
}

// ResetAllData empties every table except arbiter accounts, in one
// transaction. Order respects referential dependencies.
func (r *UserWriteRepository) ResetAllData(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM user_sessions`,
		`DELETE FROM bottles`,
		`DELETE FROM tasting_sessions`,
		`DELETE FROM tastings`,
		`DELETE FROM password_resets`,
		`DELETE FROM users WHERE role != '` + models.RoleArbiter + `'`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("reset all data failed", "statement", stmt, "error", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Log.Infow("all data reset")
	return nil
}
