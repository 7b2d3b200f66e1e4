package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

// ErrArbiterUndeletable guards the arbiter account against the
// participant-management delete endpoint.
var ErrArbiterUndeletable = errors.New("arbiter accounts cannot be deleted")

// ParticipantLister lists participant accounts with their tasting stats.
type ParticipantLister interface {
	ListParticipantsWithStats(ctx context.Context) ([]models.ParticipantWithStats, error)
}

// AdminUserReader looks up accounts for the admin operations.
type AdminUserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// AdminUserWriter performs the privileged account mutations.
type AdminUserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string, firstName, lastName *string, role string, needsPasswordSetup bool) (*models.UserDB, error)
	DeleteWithTastings(ctx context.Context, id uuid.UUID) (bool, error)
	ResetAllData(ctx context.Context) error
}

// AdminService handles participant management for the arbiter.
type AdminService struct {
	participants ParticipantLister
	reader       AdminUserReader
	writer       AdminUserWriter
	mailer       Mailer
	frontendURL  string
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(
	participants ParticipantLister,
	reader AdminUserReader,
	writer AdminUserWriter,
	mailer Mailer,
	frontendURL string,
) *AdminService {
	return &AdminService{
		participants: participants,
		reader:       reader,
		writer:       writer,
		mailer:       mailer,
		frontendURL:  frontendURL,
	}
}

// ListUsers returns every participant account with tasting count and
// average score.
func (svc *AdminService) ListUsers(ctx context.Context) ([]models.ParticipantView, error) {
	rows, err := svc.participants.ListParticipantsWithStats(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list participants", "err", err)
		return nil, err
	}

	views := make([]models.ParticipantView, 0, len(rows))
	for _, row := range rows {
		view := models.ParticipantView{
			ID:                 row.ID,
			Username:           row.Username,
			Email:              row.Email,
			FirstName:          row.FirstName,
			LastName:           row.LastName,
			IsActive:           row.IsActive,
			NeedsPasswordSetup: row.NeedsPasswordSetup,
			CreatedAt:          row.CreatedAt,
			TastingCount:       row.TastingCount,
		}
		if row.AverageScore != nil {
			view.AverageScore = formatScorePtr(*row.AverageScore)
		}
		views = append(views, view)
	}
	return views, nil
}

// usernameFromEmail derives an account name from the email local part,
// keeping lowercase letters and digits only.
func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	var b strings.Builder
	for _, r := range strings.ToLower(local) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CreateParticipant registers an invited account. The setup token is
// stored in place of the password hash until the participant completes
// setup; the activation link is emailed and returned for the response.
func (svc *AdminService) CreateParticipant(ctx context.Context, firstName, email string) (*models.UserDB, string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check existing participant", "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUserAlreadyExists
	}

	setupToken, err := generateToken()
	if err != nil {
		logger.Log.Errorw("failed to generate setup token", "err", err)
		return nil, "", err
	}

	username := usernameFromEmail(email)
	user, err := svc.writer.Save(ctx, username, email, setupToken, &firstName, nil, models.RoleParticipant, true)
	if err != nil {
		logger.Log.Errorw("failed to save participant", "email", email, "err", err)
		return nil, "", err
	}

	activationLink := fmt.Sprintf("%s/?token=%s&email=%s", svc.frontendURL, setupToken, url.QueryEscape(email))
	if err := svc.mailer.SendParticipantInvitation(ctx, email, firstName, activationLink); err != nil {
		// The account exists either way; the arbiter can resend the link.
		logger.Log.Errorw("failed to send invitation email", "email", email, "err", err)
	}

	logger.Log.Infow("participant created", "user_id", user.ID, "username", username)
	return user, activationLink, nil
}

// DeleteUser removes a participant account with all of their tastings.
func (svc *AdminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user for delete", "user_id", id, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Role == models.RoleArbiter {
		return ErrArbiterUndeletable
	}

	deleted, err := svc.writer.DeleteWithTastings(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// ResetAllData wipes every record except arbiter accounts.
func (svc *AdminService) ResetAllData(ctx context.Context) error {
	if err := svc.writer.ResetAllData(ctx); err != nil {
		logger.Log.Errorw("failed to reset data", "err", err)
		return err
	}
	logger.Log.Infow("all application data reset")
	return nil
}
