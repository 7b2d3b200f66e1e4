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

const tastingColumns = `id, user_id, bottle_identifier, wine_name, wine_type, vintage, region,
	appearance_score, aroma_score, taste_score, finish_score, final_score, notes, tasting_date, created_at`

// TastingReadRepository handles tasting read operations.
type TastingReadRepository struct {
	db *sqlx.DB
}

func NewTastingReadRepository(db *sqlx.DB) *TastingReadRepository {
	return &TastingReadRepository{db: db}
}

// GetByIDAndUser returns the tasting only when it belongs to the user,
// or nil otherwise.
func (r *TastingReadRepository) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.TastingDB, error) {
	query := `SELECT ` + tastingColumns + ` FROM tastings WHERE id = $1 AND user_id = $2`

	var tasting models.TastingDB
	err := r.db.GetContext(ctx, &tasting, query, id, userID)

	logger.Log.Infow("tasting get",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tasting, nil
}

// ListByUser returns one page of the user's tastings, newest tasting first.
func (r *TastingReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.TastingDB, error) {
	query := `
		SELECT ` + tastingColumns + `
		FROM tastings
		WHERE user_id = $1
		ORDER BY tasting_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	var tastings []models.TastingDB
	err := r.db.SelectContext(ctx, &tastings, query, userID, limit, offset)

	logger.Log.Infow("tasting list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit, offset},
		"count", len(tastings),
		"error", err,
	)

	return tastings, err
}

// CountByUser returns the user's total tasting count.
func (r *TastingReadRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM tastings WHERE user_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)

	logger.Log.Infow("tasting count",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	return count, err
}

// ListAll returns one page of every user's tastings joined with the
// owner's identity, for the arbiter listing.
func (r *TastingReadRepository) ListAll(ctx context.Context, limit, offset int) ([]models.TastingWithUser, error) {
	query := `
		SELECT t.id, t.user_id, t.bottle_identifier, t.wine_name, t.wine_type, t.vintage, t.region,
		       t.appearance_score, t.aroma_score, t.taste_score, t.finish_score, t.final_score,
		       t.notes, t.tasting_date, t.created_at,
		       u.username, u.first_name, u.last_name, u.email
		FROM tastings t
		JOIN users u ON t.user_id = u.id
		ORDER BY t.tasting_date DESC, t.created_at DESC
		LIMIT $1 OFFSET $2
	`

	var tastings []models.TastingWithUser
	err := r.db.SelectContext(ctx, &tastings, query, limit, offset)

	logger.Log.Infow("tasting list all",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit, offset},
		"count", len(tastings),
		"error", err,
	)

	return tastings, err
}

// CountAll returns the total tasting count across all users.
func (r *TastingReadRepository) CountAll(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM tastings`

	var count int
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow("tasting count all",
		"query", strings.Join(strings.Fields(query), " "),
		"result", count,
		"error", err,
	)

	return count, err
}

// TastingWriteRepository handles tasting write operations.
type TastingWriteRepository struct {
	db *sqlx.DB
}

func NewTastingWriteRepository(db *sqlx.DB) *TastingWriteRepository {
	return &TastingWriteRepository{db: db}
}

// Save inserts a tasting and returns the created row.
func (r *TastingWriteRepository) Save(ctx context.Context, t *models.TastingDB) (*models.TastingDB, error) {
	query := `
		INSERT INTO tastings (user_id, bottle_identifier, wine_name, wine_type, vintage, region,
		                      appearance_score, aroma_score, taste_score, finish_score, final_score,
		                      notes, tasting_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		RETURNING ` + tastingColumns

	var saved models.TastingDB
	err := r.db.GetContext(ctx, &saved, query,
		t.UserID, t.BottleIdentifier, t.WineName, t.WineType, t.Vintage, t.Region,
		t.AppearanceScore, t.AromaScore, t.TasteScore, t.FinishScore, t.FinalScore,
		t.Notes, t.TastingDate,
	)

	logger.Log.Infow("tasting save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{t.UserID, t.WineName, t.FinalScore},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteByIDAndUser removes a tasting only when it belongs to the user.
// Returns false when no row matched, which covers both a missing tasting
// and someone else's tasting.
func (r *TastingWriteRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM tastings WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("tasting delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
