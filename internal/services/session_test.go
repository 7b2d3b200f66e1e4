package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/winetasting-app/backend/internal/models"
	"github.com/winetasting-app/backend/internal/services"
)

func newSessionService(ctrl *gomock.Controller) (
	*services.SessionService,
	*services.MockSessionReader,
	*services.MockSessionWriter,
	*services.MockBottleReader,
	*services.MockBottleWriter,
	*services.MockEnrollmentReader,
	*services.MockEnrollmentWriter,
	*services.MockEnrolledUserReader,
) {
	sessions := services.NewMockSessionReader(ctrl)
	writer := services.NewMockSessionWriter(ctrl)
	bottles := services.NewMockBottleReader(ctrl)
	bottleStore := services.NewMockBottleWriter(ctrl)
	enrollments := services.NewMockEnrollmentReader(ctrl)
	enroller := services.NewMockEnrollmentWriter(ctrl)
	users := services.NewMockEnrolledUserReader(ctrl)

	svc := services.NewSessionService(sessions, writer, bottles, bottleStore, enrollments, enroller, users)
	return svc, sessions, writer, bottles, bottleStore, enrollments, enroller, users
}

func TestSessionService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, writer, _, _, _, _, _ := newSessionService(ctrl)
	id := uuid.New()

	tests := []struct {
		name    string
		status  string
		updated bool
		wantErr error
	}{
		{name: "activate", status: models.SessionStatusActive, updated: true},
		{name: "complete", status: models.SessionStatusCompleted, updated: true},
		{name: "unknown status", status: "paused", wantErr: services.ErrInvalidSessionStatus},
		{name: "missing session", status: models.SessionStatusActive, updated: false, wantErr: services.ErrSessionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr != services.ErrInvalidSessionStatus {
				writer.EXPECT().SetStatus(gomock.Any(), id, tt.status).Return(tt.updated, nil)
				if tt.updated {
					sessions.EXPECT().GetByID(gomock.Any(), id).
						Return(&models.SessionDB{ID: id, Status: tt.status}, nil)
				}
			}

			session, err := svc.SetStatus(context.Background(), id, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, session.Status)
			}
		})
	}
}

func TestSessionService_AddBottle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, _, bottles, bottleStore, _, _, _ := newSessionService(ctrl)
	sessionID := uuid.New()

	t.Run("success", func(t *testing.T) {
		sessions.EXPECT().GetByID(gomock.Any(), sessionID).
			Return(&models.SessionDB{ID: sessionID}, nil)
		bottles.EXPECT().NumberExists(gomock.Any(), sessionID, 1).Return(false, nil)
		bottleStore.EXPECT().Save(gomock.Any(), sessionID, 1, gomock.Any(), gomock.Any()).
			Return(&models.BottleDB{ID: uuid.New(), SessionID: sessionID, BottleNumber: 1}, nil)

		bottle, err := svc.AddBottle(context.Background(), sessionID, 1, nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, 1, bottle.BottleNumber)
	})

	t.Run("duplicate number", func(t *testing.T) {
		sessions.EXPECT().GetByID(gomock.Any(), sessionID).
			Return(&models.SessionDB{ID: sessionID}, nil)
		bottles.EXPECT().NumberExists(gomock.Any(), sessionID, 1).Return(true, nil)

		_, err := svc.AddBottle(context.Background(), sessionID, 1, nil, nil)
		assert.ErrorIs(t, err, services.ErrBottleNumberTaken)
	})

	t.Run("missing session", func(t *testing.T) {
		sessions.EXPECT().GetByID(gomock.Any(), sessionID).Return(nil, nil)

		_, err := svc.AddBottle(context.Background(), sessionID, 1, nil, nil)
		assert.ErrorIs(t, err, services.ErrSessionNotFound)
	})
}

func TestSessionService_Join(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, _, _, _, enrollments, enroller, _ := newSessionService(ctrl)
	sessionID := uuid.New()
	userID := uuid.New()

	t.Run("first join enrolls", func(t *testing.T) {
		sessions.EXPECT().GetByID(gomock.Any(), sessionID).
			Return(&models.SessionDB{ID: sessionID, Status: models.SessionStatusActive}, nil)
		enrollments.EXPECT().Get(gomock.Any(), userID, sessionID).Return(nil, nil)
		enroller.EXPECT().Save(gomock.Any(), userID, sessionID, models.EnrollmentStatusWaiting, 1).
			Return(&models.UserSessionDB{ID: uuid.New(), UserID: userID, SessionID: sessionID}, nil)

		enrollment, alreadyJoined, err := svc.Join(context.Background(), sessionID, userID)
		assert.NoError(t, err)
		assert.False(t, alreadyJoined)
		assert.Equal(t, userID, enrollment.UserID)
	})

	t.Run("second join is idempotent", func(t *testing.T) {
		existing := &models.UserSessionDB{ID: uuid.New(), UserID: userID, SessionID: sessionID}
		sessions.EXPECT().GetByID(gomock.Any(), sessionID).
			Return(&models.SessionDB{ID: sessionID, Status: models.SessionStatusActive}, nil)
		enrollments.EXPECT().Get(gomock.Any(), userID, sessionID).Return(existing, nil)

		enrollment, alreadyJoined, err := svc.Join(context.Background(), sessionID, userID)
		assert.NoError(t, err)
		assert.True(t, alreadyJoined)
		assert.Equal(t, existing.ID, enrollment.ID)
	})

	t.Run("inactive session", func(t *testing.T) {
		sessions.EXPECT().GetByID(gomock.Any(), sessionID).
			Return(&models.SessionDB{ID: sessionID, Status: models.SessionStatusSetup}, nil)

		_, _, err := svc.Join(context.Background(), sessionID, userID)
		assert.ErrorIs(t, err, services.ErrSessionNotActive)
	})

	t.Run("missing session", func(t *testing.T) {
		sessions.EXPECT().GetByID(gomock.Any(), sessionID).Return(nil, nil)

		_, _, err := svc.Join(context.Background(), sessionID, userID)
		assert.ErrorIs(t, err, services.ErrSessionNotActive)
	})
}

func TestSessionService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, _, _, _, _, _ := newSessionService(ctrl)
	id := uuid.New()

	writer.EXPECT().Delete(gomock.Any(), id).Return(true, nil)
	assert.NoError(t, svc.Delete(context.Background(), id))

	writer.EXPECT().Delete(gomock.Any(), id).Return(false, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), id), services.ErrSessionNotFound)
}

func TestSessionService_RemoveBottle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, bottleStore, _, _, _ := newSessionService(ctrl)
	id := uuid.New()

	bottleStore.EXPECT().Delete(gomock.Any(), id).Return(false, nil)
	assert.ErrorIs(t, svc.RemoveBottle(context.Background(), id), services.ErrBottleNotFound)
}

func TestSessionService_GetForTaster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, _, bottles, _, enrollments, _, _ := newSessionService(ctrl)
	sessionID := uuid.New()
	userID := uuid.New()

	t.Run("enrolled participant", func(t *testing.T) {
		sessions.EXPECT().GetByID(gomock.Any(), sessionID).
			Return(&models.SessionDB{ID: sessionID, Status: models.SessionStatusActive}, nil)
		enrollments.EXPECT().Get(gomock.Any(), userID, sessionID).
			Return(&models.UserSessionDB{UserID: userID, SessionID: sessionID, CurrentBottle: 2}, nil)
		bottles.EXPECT().ListBySession(gomock.Any(), sessionID).
			Return([]models.BottleDB{{BottleNumber: 1}, {BottleNumber: 2}}, nil)

		session, sessionBottles, enrollment, err := svc.GetForTaster(context.Background(), sessionID, userID)
		assert.NoError(t, err)
		assert.Equal(t, sessionID, session.ID)
		assert.Len(t, sessionBottles, 2)
		assert.Equal(t, 2, enrollment.CurrentBottle)
	})

	t.Run("not enrolled", func(t *testing.T) {
		sessions.EXPECT().GetByID(gomock.Any(), sessionID).
			Return(&models.SessionDB{ID: sessionID}, nil)
		enrollments.EXPECT().Get(gomock.Any(), userID, sessionID).Return(nil, nil)

		_, _, _, err := svc.GetForTaster(context.Background(), sessionID, userID)
		assert.ErrorIs(t, err, services.ErrNotEnrolled)
	})
}

func TestSessionService_AddParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessions, _, _, _, enrollments, enroller, users := newSessionService(ctrl)
	sessionID := uuid.New()
	participantID := uuid.New()

	t.Run("success", func(t *testing.T) {
		sessions.EXPECT().GetByID(gomock.Any(), sessionID).
			Return(&models.SessionDB{ID: sessionID}, nil)
		users.EXPECT().GetByID(gomock.Any(), participantID).
			Return(&models.UserDB{ID: participantID, Role: models.RoleParticipant}, nil)
		enrollments.EXPECT().Get(gomock.Any(), participantID, sessionID).Return(nil, nil)
		enroller.EXPECT().Save(gomock.Any(), participantID, sessionID, models.EnrollmentStatusWaiting, 1).
			Return(&models.UserSessionDB{UserID: participantID, SessionID: sessionID}, nil)

		enrollment, err := svc.AddParticipant(context.Background(), sessionID, participantID)
		assert.NoError(t, err)
		assert.Equal(t, participantID, enrollment.UserID)
	})

	t.Run("already enrolled", func(t *testing.T) {
		sessions.EXPECT().GetByID(gomock.Any(), sessionID).
			Return(&models.SessionDB{ID: sessionID}, nil)
		users.EXPECT().GetByID(gomock.Any(), participantID).
			Return(&models.UserDB{ID: participantID, Role: models.RoleParticipant}, nil)
		enrollments.EXPECT().Get(gomock.Any(), participantID, sessionID).
			Return(&models.UserSessionDB{UserID: participantID}, nil)

		_, err := svc.AddParticipant(context.Background(), sessionID, participantID)
		assert.ErrorIs(t, err, services.ErrAlreadyEnrolled)
	})

	t.Run("arbiter cannot be enrolled", func(t *testing.T) {
		sessions.EXPECT().GetByID(gomock.Any(), sessionID).
			Return(&models.SessionDB{ID: sessionID}, nil)
		users.EXPECT().GetByID(gomock.Any(), participantID).
			Return(&models.UserDB{ID: participantID, Role: models.RoleArbiter}, nil)

		_, err := svc.AddParticipant(context.Background(), sessionID, participantID)
		assert.ErrorIs(t, err, services.ErrParticipantNotFound)
	})
}
