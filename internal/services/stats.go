package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

// StatsReader runs the aggregate queries.
type StatsReader interface {
	UserStatistics(ctx context.Context, userID uuid.UUID) (*models.UserStatsRow, error)
	GlobalStatistics(ctx context.Context) (*models.GlobalStatsRow, error)
	DetailedGlobalStatistics(ctx context.Context) (*models.DetailedStatsRow, error)
	TopUsers(ctx context.Context) ([]models.TopUserRow, error)
	BottleRankings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.BottleRankingRow, error)
	CountBottleGroups(ctx context.Context, userID uuid.UUID) (int, error)
	GlobalBottleRankings(ctx context.Context, limit, offset int) ([]models.BottleRankingRow, error)
	CountGlobalBottleGroups(ctx context.Context) (int, error)
}

// StatsService shapes the aggregate rows into the reported views. All
// operations are read only.
type StatsService struct {
	reader StatsReader
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(reader StatsReader) *StatsService {
	return &StatsService{reader: reader}
}

// formatScore renders a score with exactly one decimal digit.
func formatScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}

func formatScorePtr(score float64) *string {
	s := formatScore(score)
	return &s
}

// formatNullScore renders a nullable aggregate, nil over zero rows.
func formatNullScore(score sql.NullFloat64) *string {
	if !score.Valid {
		return nil
	}
	return formatScorePtr(score.Float64)
}

// UserStatistics reports the user's totals, extremes, score buckets, and
// activity.
func (svc *StatsService) UserStatistics(ctx context.Context, userID uuid.UUID) (*models.UserStatisticsView, error) {
	row, err := svc.reader.UserStatistics(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to compute user statistics", "user_id", userID, "err", err)
		return nil, err
	}

	view := &models.UserStatisticsView{
		TotalTastings:     row.TotalTastings,
		AverageScore:      formatNullScore(row.AverageScore),
		BestScore:         formatNullScore(row.BestScore),
		WorstScore:        formatNullScore(row.WorstScore),
		ExcellentTastings: row.Excellent,
		GoodTastings:      row.Good,
		AverageTastings:   row.Average,
		PoorTastings:      row.Poor,
		ActiveDays:        row.ActiveDays,
	}
	if row.LastTastingDate.Valid {
		t := row.LastTastingDate.Time
		view.LastTastingDate = &t
	}
	return view, nil
}

// GlobalStatistics reports all-user totals and 30-day activity.
func (svc *StatsService) GlobalStatistics(ctx context.Context) (*models.GlobalStatisticsView, error) {
	row, err := svc.reader.GlobalStatistics(ctx)
	if err != nil {
		logger.Log.Errorw("failed to compute global statistics", "err", err)
		return nil, err
	}

	return &models.GlobalStatisticsView{
		TotalUsers:         row.TotalUsers,
		TotalTastings:      row.TotalTastings,
		GlobalAverageScore: formatNullScore(row.GlobalAverageScore),
		HighestScore:       formatNullScore(row.HighestScore),
		ActiveDays:         row.ActiveDays,
		TastingsLast30Days: row.TastingsLast30Days,
		NewUsersLast30Days: row.NewUsersLast30Days,
	}, nil
}

// DetailedGlobalStatistics reports the global score summary with the
// top-10 leaderboard of participants with at least one tasting.
func (svc *StatsService) DetailedGlobalStatistics(ctx context.Context) (*models.DetailedStatisticsView, error) {
	row, err := svc.reader.DetailedGlobalStatistics(ctx)
	if err != nil {
		logger.Log.Errorw("failed to compute detailed statistics", "err", err)
		return nil, err
	}

	topRows, err := svc.reader.TopUsers(ctx)
	if err != nil {
		logger.Log.Errorw("failed to compute top users", "err", err)
		return nil, err
	}

	topUsers := make([]models.TopUserView, 0, len(topRows))
	for _, u := range topRows {
		topUsers = append(topUsers, models.TopUserView{
			Username:     u.Username,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			TastingCount: u.TastingCount,
			AverageScore: formatScore(u.AverageScore),
			BestScore:    formatScore(u.BestScore),
		})
	}

	return &models.DetailedStatisticsView{
		TotalTastings: row.TotalTastings,
		TotalUsers:    row.TotalUsers,
		AverageScore:  formatNullScore(row.AverageScore),
		MinScore:      formatNullScore(row.MinScore),
		MaxScore:      formatNullScore(row.MaxScore),
		TopUsers:      topUsers,
	}, nil
}

func rankingViews(rows []models.BottleRankingRow, offset int, withUserCount bool) []models.BottleRankingView {
	views := make([]models.BottleRankingView, 0, len(rows))
	for i, row := range rows {
		view := models.BottleRankingView{
			Rank:             offset + i + 1,
			BottleIdentifier: row.BottleIdentifier,
			Wine: models.RankedWine{
				Name:    row.WineName,
				Type:    row.WineType,
				Vintage: row.Vintage,
				Region:  row.Region,
			},
			TastingCount:    row.TastingCount,
			AverageScore:    formatScore(row.AverageScore),
			BestScore:       formatScore(row.BestScore),
			WorstScore:      formatScore(row.WorstScore),
			LastTastingDate: row.LastTastingDate,
		}
		if withUserCount {
			view.UserCount = row.UserCount
		}
		views = append(views, view)
	}
	return views
}

// BottleRankings reports the user's bottle leaderboard page. Rank is the
// 1-based position in the full ordered result; the total counts distinct
// bottle identifiers.
func (svc *StatsService) BottleRankings(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.BottleRankingView, int, error) {
	offset := (page - 1) * limit

	rows, err := svc.reader.BottleRankings(ctx, userID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to compute bottle rankings", "user_id", userID, "err", err)
		return nil, 0, err
	}
	total, err := svc.reader.CountBottleGroups(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return rankingViews(rows, offset, false), total, nil
}

// GlobalBottleRankings reports the all-user bottle leaderboard page with
// the distinct taster count per group.
func (svc *StatsService) GlobalBottleRankings(ctx context.Context, page, limit int) ([]models.BottleRankingView, int, error) {
	offset := (page - 1) * limit

	rows, err := svc.reader.GlobalBottleRankings(ctx, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to compute global bottle rankings", "err", err)
		return nil, 0, err
	}
	total, err := svc.reader.CountGlobalBottleGroups(ctx)
	if err != nil {
		return nil, 0, err
	}

	return rankingViews(rows, offset, true), total, nil
}
