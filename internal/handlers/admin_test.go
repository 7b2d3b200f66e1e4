package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/winetasting-app/backend/internal/models"
	"github.com/winetasting-app/backend/internal/services"
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserLister(ctrl)
	avg := "14.6"
	mockSvc.EXPECT().
		ListUsers(gomock.Any()).
		Return([]models.ParticipantView{
			{ID: uuid.New(), Username: "alice", TastingCount: 4, AverageScore: &avg},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/admin/users", nil)
	rr := httptest.NewRecorder()
	NewListUsersHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeResponse(t, rr).Success)
}

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success returns the activation link", func(t *testing.T) {
		mockSvc := NewMockParticipantCreator(ctrl)
		mockSvc.EXPECT().
			CreateParticipant(gomock.Any(), "Jean", "jean@example.com").
			Return(&models.UserDB{ID: uuid.New(), Username: "jean", NeedsPasswordSetup: true},
				"http://localhost:8080/?token=abc&email=jean%40example.com", nil)

		bodyBytes, _ := json.Marshal(CreateUserRequest{FirstName: "Jean", Email: "jean@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/admin/users", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewCreateUserHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			Data CreatedUserPayload `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Data.ActivationLink, "token=abc")
	})

	t.Run("existing email conflicts", func(t *testing.T) {
		mockSvc := NewMockParticipantCreator(ctrl)
		mockSvc.EXPECT().
			CreateParticipant(gomock.Any(), "Sam", "taken@example.com").
			Return(nil, "", services.ErrUserAlreadyExists)

		bodyBytes, _ := json.Marshal(CreateUserRequest{FirstName: "Sam", Email: "taken@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/admin/users", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewCreateUserHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("bad email fails validation", func(t *testing.T) {
		mockSvc := NewMockParticipantCreator(ctrl)

		bodyBytes, _ := json.Marshal(CreateUserRequest{FirstName: "Sam", Email: "not-an-email"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/admin/users", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewCreateUserHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockUserDeleter)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().DeleteUser(gomock.Any(), userID).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "arbiter protected",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().DeleteUser(gomock.Any(), userID).Return(services.ErrArbiterUndeletable)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "unknown user",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().DeleteUser(gomock.Any(), userID).Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserDeleter(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, "/auth/admin/users/"+userID.String(), nil)
			rr := serveWithParams(http.MethodDelete, "/auth/admin/users/{id}", NewDeleteUserHandler(mockSvc), req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestResetDataHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDataResetter(ctrl)
	mockSvc.EXPECT().ResetAllData(gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/auth/admin/reset-all-data", nil)
	rr := httptest.NewRecorder()
	NewResetDataHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "All data reset successfully", decodeResponse(t, rr).Message)
}
