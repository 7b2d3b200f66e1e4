package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStatsRepository_UserStatistics(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)
	userID := uuid.New()
	last := time.Now()

	rows := sqlmock.NewRows([]string{
		"total_tastings", "average_score", "best_score", "worst_score",
		"excellent_tastings", "good_tastings", "average_tastings", "poor_tastings",
		"last_tasting_date", "active_days",
	}).AddRow(7, 14.86, 18.5, 9.0, 2, 2, 1, 2, last, 4)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(userID).
		WillReturnRows(rows)

	stats, err := repo.UserStatistics(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 7, stats.TotalTastings)
	assert.True(t, stats.AverageScore.Valid)
	assert.Equal(t, 2, stats.Excellent)
	assert.Equal(t, 4, stats.ActiveDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_UserStatistics_NoTastings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)
	userID := uuid.New()

	rows := sqlmock.NewRows([]string{
		"total_tastings", "average_score", "best_score", "worst_score",
		"excellent_tastings", "good_tastings", "average_tastings", "poor_tastings",
		"last_tasting_date", "active_days",
	}).AddRow(0, nil, nil, nil, 0, 0, 0, 0, nil, 0)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(userID).
		WillReturnRows(rows)

	stats, err := repo.UserStatistics(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalTastings)
	assert.False(t, stats.AverageScore.Valid)
	assert.False(t, stats.LastTastingDate.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_BottleRankings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)
	userID := uuid.New()
	last := time.Now()

	rows := sqlmock.NewRows([]string{
		"bottle_identifier", "wine_name", "wine_type", "vintage", "region",
		"tasting_count", "average_score", "best_score", "worst_score", "last_tasting_date",
	}).
		AddRow("B-001", "Barolo", "red", 2018, "Piedmont", 3, 17.2, 18.0, 16.0, last).
		AddRow("B-002", "Chablis", "white", 2021, "Burgundy", 2, 15.5, 16.0, 15.0, last)

	mock.ExpectQuery("SELECT bottle_identifier, wine_name").
		WithArgs(userID, 20, 0).
		WillReturnRows(rows)

	rankings, err := repo.BottleRankings(context.Background(), userID, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, rankings, 2)
	assert.Equal(t, "B-001", rankings[0].BottleIdentifier)
	assert.Equal(t, 17.2, rankings[0].AverageScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_CountBottleGroups(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)
	userID := uuid.New()

	mock.ExpectQuery("SELECT COUNT\\(DISTINCT bottle_identifier\\)").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountBottleGroups(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_GlobalBottleRankings_UserCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)
	last := time.Now()

	rows := sqlmock.NewRows([]string{
		"bottle_identifier", "wine_name", "wine_type", "vintage", "region",
		"tasting_count", "average_score", "best_score", "worst_score", "last_tasting_date", "user_count",
	}).AddRow("B-001", "Barolo", "red", 2018, "Piedmont", 6, 16.8, 19.0, 13.5, last, 4)

	mock.ExpectQuery("SELECT bottle_identifier, wine_name").
		WithArgs(10, 0).
		WillReturnRows(rows)

	rankings, err := repo.GlobalBottleRankings(context.Background(), 10, 0)
	assert.NoError(t, err)
	assert.Len(t, rankings, 1)
	assert.Equal(t, 4, rankings[0].UserCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
