package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

// rankedBottleFilter excludes tastings whose identifier cannot group a
// bottle. Legacy rows carry the literal string 'null'.
const rankedBottleFilter = `bottle_identifier IS NOT NULL AND bottle_identifier != 'null' AND bottle_identifier != ''`

// StatsRepository runs the aggregate queries behind the statistics and
// ranking endpoints. Read only.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// UserStatistics returns the per-user aggregate: totals, score extremes,
// the four quality buckets, and the number of distinct active days.
func (r *StatsRepository) UserStatistics(ctx context.Context, userID uuid.UUID) (*models.UserStatsRow, error) {
	query := `
		SELECT COUNT(*) AS total_tastings,
		       AVG(final_score) AS average_score,
		       MAX(final_score) AS best_score,
		       MIN(final_score) AS worst_score,
		       COUNT(CASE WHEN final_score >= 16 THEN 1 END) AS excellent_tastings,
		       COUNT(CASE WHEN final_score >= 14 AND final_score < 16 THEN 1 END) AS good_tastings,
		       COUNT(CASE WHEN final_score >= 12 AND final_score < 14 THEN 1 END) AS average_tastings,
		       COUNT(CASE WHEN final_score < 12 THEN 1 END) AS poor_tastings,
		       MAX(tasting_date) AS last_tasting_date,
		       COUNT(DISTINCT tasting_date::date) AS active_days
		FROM tastings
		WHERE user_id = $1
	`

	var stats models.UserStatsRow
	err := r.db.GetContext(ctx, &stats, query, userID)

	logger.Log.Infow("user statistics",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GlobalStatistics returns the all-user aggregate with 30-day activity
// windows for tastings and signups.
func (r *StatsRepository) GlobalStatistics(ctx context.Context) (*models.GlobalStatsRow, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM users) AS total_users,
		       COUNT(*) AS total_tastings,
		       AVG(final_score) AS global_average_score,
		       MAX(final_score) AS highest_score,
		       COUNT(DISTINCT tasting_date::date) AS active_days,
		       COUNT(CASE WHEN tasting_date >= NOW() - INTERVAL '30 days' THEN 1 END) AS tastings_last_30_days,
		       (SELECT COUNT(*) FROM users WHERE created_at >= NOW() - INTERVAL '30 days') AS new_users_last_30_days
		FROM tastings
	`

	var stats models.GlobalStatsRow
	err := r.db.GetContext(ctx, &stats, query)

	logger.Log.Infow("global statistics",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// DetailedGlobalStatistics returns the global score summary for the
// arbiter dashboard.
func (r *StatsRepository) DetailedGlobalStatistics(ctx context.Context) (*models.DetailedStatsRow, error) {
	query := `
		SELECT COUNT(*) AS total_tastings,
		       COUNT(DISTINCT user_id) AS total_users,
		       AVG(final_score) AS average_score,
		       MIN(final_score) AS min_score,
		       MAX(final_score) AS max_score
		FROM tastings
	`

	var stats models.DetailedStatsRow
	err := r.db.GetContext(ctx, &stats, query)

	logger.Log.Infow("detailed global statistics",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// TopUsers returns the ten best-scoring users that have at least one
// tasting, for the arbiter dashboard leaderboard.
func (r *StatsRepository) TopUsers(ctx context.Context) ([]models.TopUserRow, error) {
	query := `
		SELECT u.username, u.first_name, u.last_name,
		       COUNT(t.id) AS tasting_count,
		       AVG(t.final_score) AS average_score,
		       MAX(t.final_score) AS best_score
		FROM users u
		JOIN tastings t ON u.id = t.user_id
		GROUP BY u.id, u.username, u.first_name, u.last_name
		HAVING COUNT(t.id) > 0
		ORDER BY average_score DESC
		LIMIT 10
	`

	var users []models.TopUserRow
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow("top users",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(users),
		"error", err,
	)

	return users, err
}

// BottleRankings returns one page of the user's bottle groups ordered by
// average score, then tasting count, both descending.
func (r *StatsRepository) BottleRankings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.BottleRankingRow, error) {
	query := `
		SELECT bottle_identifier, wine_name, wine_type, vintage, region,
		       COUNT(*) AS tasting_count,
		       AVG(final_score) AS average_score,
		       MAX(final_score) AS best_score,
		       MIN(final_score) AS worst_score,
		       MAX(tasting_date) AS last_tasting_date
		FROM tastings
		WHERE user_id = $1 AND ` + rankedBottleFilter + `
		GROUP BY bottle_identifier, wine_name, wine_type, vintage, region
		ORDER BY average_score DESC, tasting_count DESC
		LIMIT $2 OFFSET $3
	`

	var rankings []models.BottleRankingRow
	err := r.db.SelectContext(ctx, &rankings, query, userID, limit, offset)

	logger.Log.Infow("bottle rankings",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit, offset},
		"count", len(rankings),
		"error", err,
	)

	return rankings, err
}

// CountBottleGroups returns the number of distinct rankable bottle
// identifiers the user has tasted.
func (r *StatsRepository) CountBottleGroups(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(DISTINCT bottle_identifier)
		FROM tastings
		WHERE user_id = $1 AND ` + rankedBottleFilter

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)

	logger.Log.Infow("bottle group count",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	return count, err
}

// GlobalBottleRankings returns one page of bottle groups across all
// users, with the number of distinct tasters per group.
func (r *StatsRepository) GlobalBottleRankings(ctx context.Context, limit, offset int) ([]models.BottleRankingRow, error) {
	query := `
		SELECT bottle_identifier, wine_name, wine_type, vintage, region,
		       COUNT(*) AS tasting_count,
		       AVG(final_score) AS average_score,
		       MAX(final_score) AS best_score,
		       MIN(final_score) AS worst_score,
		       MAX(tasting_date) AS last_tasting_date,
		       COUNT(DISTINCT user_id) AS user_count
		FROM tastings
		WHERE ` + rankedBottleFilter + `
		GROUP BY bottle_identifier, wine_name, wine_type, vintage, region
		ORDER BY average_score DESC, tasting_count DESC
		LIMIT $1 OFFSET $2
	`

	var rankings []models.BottleRankingRow
	err := r.db.SelectContext(ctx, &rankings, query, limit, offset)

	logger.Log.Infow("global bottle rankings",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit, offset},
		"count", len(rankings),
		"error", err,
	)

	return rankings, err
}

// CountGlobalBottleGroups returns the number of distinct rankable bottle
// identifiers across all users.
func (r *StatsRepository) CountGlobalBottleGroups(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(DISTINCT bottle_identifier)
		FROM tastings
		WHERE ` + rankedBottleFilter

	var count int
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow("global bottle group count",
		"query", strings.Join(strings.Fields(query), " "),
		"result", count,
		"error", err,
	)

	return count, err
}
