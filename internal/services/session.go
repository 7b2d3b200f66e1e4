package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

// Error variables
var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionNotActive     = errors.New("session not found or not active")
	ErrInvalidSessionStatus = errors.New("invalid session status")
	ErrBottleNumberTaken    = errors.New("bottle number already used in this session")
	ErrBottleNotFound       = errors.New("bottle not found")
	ErrNotEnrolled          = errors.New("user is not enrolled in this session")
	ErrAlreadyEnrolled      = errors.New("participant already enrolled in this session")
	ErrParticipantNotFound  = errors.New("participant not found")
)

// SessionReader defines read operations for sessions.
type SessionReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.SessionDB, error)
	ListAll(ctx context.Context) ([]models.SessionWithCounts, error)
	ListActive(ctx context.Context) ([]models.SessionWithCounts, error)
}

// SessionWriter defines write operations for sessions.
type SessionWriter interface {
	Save(ctx context.Context, name, sessionType string, createdBy uuid.UUID) (*models.SessionDB, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// BottleReader defines read operations for bottles.
type BottleReader interface {
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.BottleDB, error)
	NumberExists(ctx context.Context, sessionID uuid.UUID, bottleNumber int) (bool, error)
}

// BottleWriter defines write operations for bottles.
type BottleWriter interface {
	Save(ctx context.Context, sessionID uuid.UUID, bottleNumber int, customName, wineDetails *string) (*models.BottleDB, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// EnrollmentReader defines read operations for enrollments.
type EnrollmentReader interface {
	Get(ctx context.Context, userID, sessionID uuid.UUID) (*models.UserSessionDB, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.SessionParticipant, error)
}

// EnrollmentWriter defines write operations for enrollments.
type EnrollmentWriter interface {
	Save(ctx context.Context, userID, sessionID uuid.UUID, status string, currentBottle int) (*models.UserSessionDB, error)
}

// EnrolledUserReader looks up accounts when the arbiter enrolls them.
type EnrolledUserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// SessionService manages the tasting session lifecycle: creation, the
// single-active-session invariant, bottles, and enrollment.
type SessionService struct {
	sessions    SessionReader
	writer      SessionWriter
	bottles     BottleReader
	bottleStore BottleWriter
	enrollments EnrollmentReader
	enroller    EnrollmentWriter
	users       EnrolledUserReader
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(
	sessions SessionReader,
	writer SessionWriter,
	bottles BottleReader,
	bottleStore BottleWriter,
	enrollments EnrollmentReader,
	enroller EnrollmentWriter,
	users EnrolledUserReader,
) *SessionService {
	return &SessionService{
		sessions:    sessions,
		writer:      writer,
		bottles:     bottles,
		bottleStore: bottleStore,
		enrollments: enrollments,
		enroller:    enroller,
		users:       users,
	}
}

// Create opens a new session in setup status.
func (svc *SessionService) Create(ctx context.Context, name, sessionType string, createdBy uuid.UUID) (*models.SessionDB, error) {
	session, err := svc.writer.Save(ctx, name, sessionType, createdBy)
	if err != nil {
		logger.Log.Errorw("failed to create session", "name", name, "err", err)
		return nil, err
	}
	logger.Log.Infow("session created", "session_id", session.ID, "name", name, "type", sessionType)
	return session, nil
}

// SetStatus transitions a session and returns the updated row. Setting a
// session active demotes every other active session in the same
// transaction, so at most one session is ever active.
func (svc *SessionService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.SessionDB, error) {
	if !models.ValidSessionStatus(status) {
		return nil, ErrInvalidSessionStatus
	}

	updated, err := svc.writer.SetStatus(ctx, id, status)
	if err != nil {
		logger.Log.Errorw("failed to set session status", "session_id", id, "status", status, "err", err)
		return nil, err
	}
	if !updated {
		return nil, ErrSessionNotFound
	}

	session, err := svc.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// AddBottle registers a bottle in the session. The duplicate-number check
// is a read before the insert, so two concurrent adds can still collide.
func (svc *SessionService) AddBottle(ctx context.Context, sessionID uuid.UUID, bottleNumber int, customName, wineDetails *string) (*models.BottleDB, error) {
	session, err := svc.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	taken, err := svc.bottles.NumberExists(ctx, sessionID, bottleNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrBottleNumberTaken
	}

	bottle, err := svc.bottleStore.Save(ctx, sessionID, bottleNumber, customName, wineDetails)
	if err != nil {
		logger.Log.Errorw("failed to add bottle", "session_id", sessionID, "bottle_number", bottleNumber, "err", err)
		return nil, err
	}
	return bottle, nil
}

// RemoveBottle deletes a bottle by id.
func (svc *SessionService) RemoveBottle(ctx context.Context, bottleID uuid.UUID) error {
	deleted, err := svc.bottleStore.Delete(ctx, bottleID)
	if err != nil {
		logger.Log.Errorw("failed to remove bottle", "bottle_id", bottleID, "err", err)
		return err
	}
	if !deleted {
		return ErrBottleNotFound
	}
	return nil
}

// Join enrolls the user into an active session. Joining twice returns the
// existing enrollment with alreadyJoined set instead of erroring.
func (svc *SessionService) Join(ctx context.Context, sessionID, userID uuid.UUID) (*models.UserSessionDB, bool, error) {
	session, err := svc.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	if session == nil || session.Status != models.SessionStatusActive {
		return nil, false, ErrSessionNotActive
	}

	existing, err := svc.enrollments.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	enrollment, err := svc.enroller.Save(ctx, userID, sessionID, models.EnrollmentStatusWaiting, 1)
	if err != nil {
		logger.Log.Errorw("failed to join session", "session_id", sessionID, "user_id", userID, "err", err)
		return nil, false, err
	}

	logger.Log.Infow("session joined", "session_id", sessionID, "user_id", userID)
	return enrollment, false, nil
}

// Delete removes a session with its bottles and enrollments. Tastings
// recorded during the session are left intact.
func (svc *SessionService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrSessionNotFound
	}
	return nil
}

// ListAll returns every session with bottle and participant counts.
func (svc *SessionService) ListAll(ctx context.Context) ([]models.SessionWithCounts, error) {
	return svc.sessions.ListAll(ctx)
}

// ListAvailable returns the sessions a participant can join.
func (svc *SessionService) ListAvailable(ctx context.Context) ([]models.SessionWithCounts, error) {
	return svc.sessions.ListActive(ctx)
}

// Get returns a session with its bottles and enrolled participants.
func (svc *SessionService) Get(ctx context.Context, id uuid.UUID) (*models.SessionDetail, error) {
	session, err := svc.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	bottles, err := svc.bottles.ListBySession(ctx, id)
	if err != nil {
		return nil, err
	}
	participants, err := svc.enrollments.ListBySession(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.SessionDetail{
		Session:      *session,
		Bottles:      bottles,
		Participants: participants,
	}, nil
}

// GetForTaster returns the session view for an enrolled participant:
// the session, its bottles in tasting order, and the caller's enrollment.
func (svc *SessionService) GetForTaster(ctx context.Context, sessionID, userID uuid.UUID) (*models.SessionDB, []models.BottleDB, *models.UserSessionDB, error) {
	session, err := svc.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, nil, nil, err
	}
	if session == nil {
		return nil, nil, nil, ErrSessionNotFound
	}

	enrollment, err := svc.enrollments.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, nil, err
	}
	if enrollment == nil {
		return nil, nil, nil, ErrNotEnrolled
	}

	bottles, err := svc.bottles.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, nil, err
	}

	return session, bottles, enrollment, nil
}

// AddParticipant enrolls a participant on the arbiter's behalf,
// regardless of session status.
func (svc *SessionService) AddParticipant(ctx context.Context, sessionID, participantID uuid.UUID) (*models.UserSessionDB, error) {
	session, err := svc.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	user, err := svc.users.GetByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != models.RoleParticipant {
		return nil, ErrParticipantNotFound
	}

	existing, err := svc.enrollments.Get(ctx, participantID, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment, err := svc.enroller.Save(ctx, participantID, sessionID, models.EnrollmentStatusWaiting, 1)
	if err != nil {
		logger.Log.Errorw("failed to add participant", "session_id", sessionID, "user_id", participantID, "err", err)
		return nil, err
	}
	return enrollment, nil
}
