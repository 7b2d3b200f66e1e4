package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/winetasting-app/backend/internal/middlewares"
	"github.com/winetasting-app/backend/internal/models"
	"github.com/winetasting-app/backend/internal/services"
)

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		body            any
		rawBody         string
		mockSetup       func(m *MockRegisterer)
		expectedCode    int
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name: "success",
			body: RegisterRequest{Username: "john_doe", Email: "john@example.com", Password: "Secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john_doe", "john@example.com", "Secret123", gomock.Nil(), gomock.Nil()).
					Return(&models.UserDB{ID: uuid.New(), Username: "john_doe"}, "token123", nil)
			},
			expectedCode:    http.StatusCreated,
			expectedSuccess: true,
			expectedMessage: "User registered successfully",
		},
		{
			name: "user already exists",
			body: RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "Secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "Secret123", gomock.Nil(), gomock.Nil()).
					Return(nil, "", services.ErrUserAlreadyExists)
			},
			expectedCode:    http.StatusConflict,
			expectedSuccess: false,
			expectedMessage: "Username or email already exists",
		},
		{
			name:            "password without digit fails validation",
			body:            RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "NoDigitsHere"},
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Validation failed",
		},
		{
			name:            "username with spaces fails validation",
			body:            RegisterRequest{Username: "bad name", Email: "bob@example.com", Password: "Secret123"},
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Validation failed",
		},
		{
			name:            "invalid json",
			rawBody:         "{invalid json}",
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Invalid request body",
		},
		{
			name: "internal server error",
			body: RegisterRequest{Username: "carol", Email: "carol@example.com", Password: "Secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "carol", "carol@example.com", "Secret123", gomock.Nil(), gomock.Nil()).
					Return(nil, "", errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedSuccess: false,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeResponse(t, rr)
			assert.Equal(t, tt.expectedSuccess, resp.Success)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		body            LoginRequest
		mockSetup       func(m *MockLoginer)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: LoginRequest{Email: "john@example.com", Password: "Secret123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "Secret123").
					Return(&models.UserDB{ID: uuid.New()}, "token123", nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Login successful",
		},
		{
			name: "invalid credentials",
			body: LoginRequest{Email: "john@example.com", Password: "wrong"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLoginHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(bodyBytes))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMessage, decodeResponse(t, rr).Message)
		})
	}
}

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockProfiler(ctrl)
		avg := "14.2"
		mockSvc.EXPECT().
			Profile(gomock.Any(), userID).
			Return(&models.UserDB{ID: userID, Username: "john_doe"}, &models.ProfileStats{TotalTastings: 3, AverageScore: &avg}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
		rr := httptest.NewRecorder()
		NewProfileHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeResponse(t, rr).Success)
	})

	t.Run("no user in context", func(t *testing.T) {
		mockSvc := NewMockProfiler(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		rr := httptest.NewRecorder()
		NewProfileHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestForgotPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("development mode echoes the token", func(t *testing.T) {
		mockSvc := NewMockPasswordResetRequester(ctrl)
		mockSvc.EXPECT().
			RequestPasswordReset(gomock.Any(), "john@example.com").
			Return("devtoken", nil)

		bodyBytes, _ := json.Marshal(ForgotPasswordRequest{Email: "john@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewForgotPasswordHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeResponse(t, rr)
		data, ok := resp.Data.(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, "devtoken", data["token"])
	})

	t.Run("unknown email still reports success", func(t *testing.T) {
		mockSvc := NewMockPasswordResetRequester(ctrl)
		mockSvc.EXPECT().
			RequestPasswordReset(gomock.Any(), "nobody@example.com").
			Return("", nil)

		bodyBytes, _ := json.Marshal(ForgotPasswordRequest{Email: "nobody@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewForgotPasswordHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeResponse(t, rr)
		assert.True(t, resp.Success)
		assert.Nil(t, resp.Data)
	})
}

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("invalid token", func(t *testing.T) {
		mockSvc := NewMockPasswordResetter(ctrl)
		mockSvc.EXPECT().
			ResetPassword(gomock.Any(), "badtoken", "Secret123").
			Return(services.ErrResetTokenInvalid)

		bodyBytes, _ := json.Marshal(ResetPasswordRequest{Token: "badtoken", Password: "Secret123"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewResetPasswordHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid or expired reset token", decodeResponse(t, rr).Message)
	})

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockPasswordResetter(ctrl)
		mockSvc.EXPECT().
			ResetPassword(gomock.Any(), "goodtoken", "Secret123").
			Return(nil)

		bodyBytes, _ := json.Marshal(ResetPasswordRequest{Token: "goodtoken", Password: "Secret123"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewResetPasswordHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestSetupPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success returns the user with a token", func(t *testing.T) {
		mockSvc := NewMockPasswordSetuper(ctrl)
		mockSvc.EXPECT().
			SetupPassword(gomock.Any(), "setuptoken", "carol@example.com", "Secret123").
			Return(&models.UserDB{ID: uuid.New(), Email: "carol@example.com"}, "jwt123", nil)

		bodyBytes, _ := json.Marshal(SetupPasswordRequest{Token: "setuptoken", Email: "carol@example.com", Password: "Secret123"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/setup-password", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewSetupPasswordHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeResponse(t, rr).Success)
	})

	t.Run("invalid setup token", func(t *testing.T) {
		mockSvc := NewMockPasswordSetuper(ctrl)
		mockSvc.EXPECT().
			SetupPassword(gomock.Any(), "stale", "carol@example.com", "Secret123").
			Return(nil, "", services.ErrSetupTokenInvalid)

		bodyBytes, _ := json.Marshal(SetupPasswordRequest{Token: "stale", Email: "carol@example.com", Password: "Secret123"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/setup-password", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewSetupPasswordHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid or expired setup token", decodeResponse(t, rr).Message)
	})
}
