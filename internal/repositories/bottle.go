package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

const bottleColumns = `id, session_id, bottle_number, custom_name, wine_details, created_at`

// BottleReadRepository handles bottle read operations.
type BottleReadRepository struct {
	db *sqlx.DB
}

func NewBottleReadRepository(db *sqlx.DB) *BottleReadRepository {
	return &BottleReadRepository{db: db}
}

// ListBySession returns the bottles of a session ordered by number.
func (r *BottleReadRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.BottleDB, error) {
	query := `SELECT ` + bottleColumns + ` FROM bottles WHERE session_id = $1 ORDER BY bottle_number`

	var bottles []models.BottleDB
	err := r.db.SelectContext(ctx, &bottles, query, sessionID)

	logger.Log.Infow("bottle list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID},
		"count", len(bottles),
		"error", err,
	)

	return bottles, err
}

// NumberExists reports whether a bottle with this number is already
// registered in the session. Pre-check only: two concurrent adds with the
// same number can still both pass, there is no unique constraint.
func (r *BottleReadRepository) NumberExists(ctx context.Context, sessionID uuid.UUID, bottleNumber int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bottles WHERE session_id = $1 AND bottle_number = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, sessionID, bottleNumber)

	logger.Log.Infow("bottle number check",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID, bottleNumber},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// BottleWriteRepository handles bottle write operations.
type BottleWriteRepository struct {
	db *sqlx.DB
}

func NewBottleWriteRepository(db *sqlx.DB) *BottleWriteRepository {
	return &BottleWriteRepository{db: db}
}

// Save inserts a bottle and returns the created row.
func (r *BottleWriteRepository) Save(ctx context.Context, sessionID uuid.UUID, bottleNumber int, customName, wineDetails *string) (*models.BottleDB, error) {
	query := `
		INSERT INTO bottles (session_id, bottle_number, custom_name, wine_details, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + bottleColumns

	var bottle models.BottleDB
	err := r.db.GetContext(ctx, &bottle, query, sessionID, bottleNumber, customName, wineDetails)

	logger.Log.Infow("bottle save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID, bottleNumber},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &bottle, nil
}

// Delete removes a bottle. Returns false when no row matched.
func (r *BottleWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM bottles WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("bottle delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
