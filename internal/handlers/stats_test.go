package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/winetasting-app/backend/internal/middlewares"
	"github.com/winetasting-app/backend/internal/models"
)

func TestUserStatisticsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	avg := "14.9"

	mockSvc := NewMockUserStatisticsReader(ctrl)
	mockSvc.EXPECT().
		UserStatistics(gomock.Any(), userID).
		Return(&models.UserStatisticsView{TotalTastings: 5, AverageScore: &avg}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tastings/statistics", nil)
	req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
	rr := httptest.NewRecorder()
	NewUserStatisticsHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data models.UserStatisticsView `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Data.TotalTastings)
	assert.Equal(t, "14.9", *resp.Data.AverageScore)
}

func TestBottleRankingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockSvc := NewMockBottleRankingReader(ctrl)
	mockSvc.EXPECT().
		BottleRankings(gomock.Any(), userID, 2, 10).
		Return([]models.BottleRankingView{
			{Rank: 11, BottleIdentifier: "B-011", AverageScore: "15.0"},
		}, 23, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tastings/rankings?page=2&limit=10", nil)
	req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
	rr := httptest.NewRecorder()
	NewBottleRankingsHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data RankingsPayload `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 11, resp.Data.Rankings[0].Rank)
	assert.Equal(t, 23, resp.Data.Pagination.Total)
	assert.Equal(t, 3, resp.Data.Pagination.TotalPages)
}

func TestGlobalStatisticsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	avg := "14.0"
	mockSvc := NewMockGlobalStatisticsReader(ctrl)
	mockSvc.EXPECT().
		GlobalStatistics(gomock.Any()).
		Return(&models.GlobalStatisticsView{TotalUsers: 4, TotalTastings: 20, GlobalAverageScore: &avg}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tastings/global-statistics", nil)
	rr := httptest.NewRecorder()
	NewGlobalStatisticsHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeResponse(t, rr).Success)
}

func TestDetailedStatisticsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDetailedStatisticsReader(ctrl)
	mockSvc.EXPECT().
		DetailedGlobalStatistics(gomock.Any()).
		Return(&models.DetailedStatisticsView{
			TotalTastings: 12,
			TopUsers:      []models.TopUserView{{Username: "alice", AverageScore: "16.3"}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tastings/admin/detailed-statistics", nil)
	rr := httptest.NewRecorder()
	NewDetailedStatisticsHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data models.DetailedStatisticsView `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.TopUsers, 1)
	assert.Equal(t, "alice", resp.Data.TopUsers[0].Username)
}

func TestGlobalRankingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockGlobalRankingReader(ctrl)
	mockSvc.EXPECT().
		GlobalBottleRankings(gomock.Any(), 1, 20).
		Return([]models.BottleRankingView{
			{Rank: 1, BottleIdentifier: "B-001", AverageScore: "16.8", UserCount: 4},
		}, 1, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tastings/admin/rankings", nil)
	rr := httptest.NewRecorder()
	NewGlobalRankingsHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data RankingsPayload `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Data.Rankings[0].UserCount)
}
