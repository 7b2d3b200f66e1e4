package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
	ErrSetupTokenInvalid  = errors.New("invalid or expired setup token")
)

// bcryptCost matches the hashing strength of the existing account base.
const bcryptCost = 12

const resetTokenTTL = 24 * time.Hour

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	GetForSetup(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string, firstName, lastName *string, role string, needsPasswordSetup bool) (*models.UserDB, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// ResetTokenStore manages password reset tokens.
type ResetTokenStore interface {
	Replace(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	GetValid(ctx context.Context, token string) (*models.PasswordResetDB, error)
	Consume(ctx context.Context, resetID, userID uuid.UUID, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// Mailer sends account emails.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email string, firstName *string, resetLink string) error
	SendParticipantInvitation(ctx context.Context, email, firstName, activationLink string) error
}

// ProfileStatsReader supplies the statistics shown on the profile.
type ProfileStatsReader interface {
	UserStatistics(ctx context.Context, userID uuid.UUID) (*models.UserStatsRow, error)
}

// AuthService handles registration, login, and credential recovery.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	resets      ResetTokenStore
	stats       ProfileStatsReader
	jwt         JWTGenerator
	mailer      Mailer
	frontendURL string
	development bool
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	resets ResetTokenStore,
	stats ProfileStatsReader,
	jwt JWTGenerator,
	mailer Mailer,
	frontendURL string,
	development bool,
) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		resets:      resets,
		stats:       stats,
		jwt:         jwt,
		mailer:      mailer,
		frontendURL: frontendURL,
		development: development,
	}
}

// generateToken returns a 64-char hex token from 32 random bytes.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Register creates a participant account and returns it with a token.
func (svc *AuthService) Register(ctx context.Context, username, email, password string, firstName, lastName *string) (*models.UserDB, string, error) {
	exists, err := svc.reader.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if exists {
		logger.Log.Warnw("user already exists", "username", username, "email", email)
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword), firstName, lastName, models.RoleParticipant, false)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user by email and returns it with a token.
// Unknown email, wrong password, and a disabled account are all reported
// as the same credentials error.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil || !user.IsActive {
		logger.Log.Warnw("login rejected", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := svc.writer.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Log.Errorw("failed to stamp last login", "user_id", user.ID, "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Profile returns the user with their tasting statistics.
func (svc *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, *models.ProfileStats, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	row, err := svc.stats.UserStatistics(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile statistics", "user_id", userID, "err", err)
		return nil, nil, err
	}

	stats := &models.ProfileStats{
		TotalTastings: row.TotalTastings,
		AverageScore:  formatNullScore(row.AverageScore),
		BestScore:     formatNullScore(row.BestScore),
	}
	return user, stats, nil
}

// RequestPasswordReset issues a reset token and emails the link. It never
// reveals whether the email is known: unknown addresses are a silent
// no-op. The token is returned only in development, for manual testing.
func (svc *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user for reset", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("reset requested for unknown email", "email", email)
		return "", nil
	}

	token, err := generateToken()
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "err", err)
		return "", err
	}

	if err := svc.resets.Replace(ctx, user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		logger.Log.Errorw("failed to store reset token", "user_id", user.ID, "err", err)
		return "", err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", svc.frontendURL, token)
	if err := svc.mailer.SendPasswordReset(ctx, user.Email, user.FirstName, resetLink); err != nil {
		logger.Log.Errorw("failed to send reset email", "user_id", user.ID, "err", err)
		return "", err
	}

	if svc.development {
		return token, nil
	}
	return "", nil
}

// ResetPassword consumes a reset token and stores the new password.
func (svc *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	reset, err := svc.resets.GetValid(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to look up reset token", "err", err)
		return err
	}
	if reset == nil {
		return ErrResetTokenInvalid
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.resets.Consume(ctx, reset.ID, reset.UserID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to consume reset token", "reset_id", reset.ID, "err", err)
		return err
	}

	return nil
}

// SetupPassword finishes an invited account. The invitation token is
// stored as the placeholder password hash until the participant picks a
// real password; on success the flag is cleared and a JWT is issued.
func (svc *AuthService) SetupPassword(ctx context.Context, token, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetForSetup(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user for setup", "err", err)
		return nil, "", err
	}
	if user == nil || user.PasswordHash != token {
		logger.Log.Warnw("setup rejected", "email", email)
		return nil, "", ErrSetupTokenInvalid
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	if err := svc.writer.SetPassword(ctx, user.ID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to set password", "user_id", user.ID, "err", err)
		return nil, "", err
	}

	jwtToken, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	user.NeedsPasswordSetup = false
	return user, jwtToken, nil
}
