package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/calorie-tracker/internal/apperrors"
	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt input limit, in bytes
	maxNicknameLen = 100
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,50}$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, passwordHash, nickname string) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AuthService handles registration, credential checks and account changes.
type AuthService struct {
	reader UserReader
	writer UserWriter
	cost   int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		cost:   bcrypt.DefaultCost,
	}
}

// NormalizeUsername trims and lower-cases a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func validatePassword(field, password string) error {
	if len(password) < minPasswordLen {
		return apperrors.NewValidationError(field, "Password must be at least 6 characters")
	}
	if len(password) > maxPasswordLen {
		return apperrors.NewValidationError(field, "Password must be at most 72 bytes")
	}
	return nil
}

// Register validates the input and stores a new user with a bcrypt password hash.
func (svc *AuthService) Register(ctx context.Context, username, password, nickname string) (*models.UserDB, error) {
	username = NormalizeUsername(username)
	if !usernamePattern.MatchString(username) {
		return nil, apperrors.NewValidationError("username",
			"Username must be 3-50 characters of lowercase letters, digits or underscores")
	}
	if err := validatePassword("password", password); err != nil {
		return nil, err
	}

	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		nickname = username
	}
	if utf8.RuneCountInString(nickname) > maxNicknameLen {
		return nil, apperrors.NewValidationError("nickname", "Nickname must be at most 100 characters")
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username)
		return nil, apperrors.NewValidationError("username", "Username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Create(ctx, username, string(hashedPassword), nickname)
	if errors.Is(err, apperrors.ErrDuplicate) {
		logger.Log.Infow("user already exists", "username", username)
		return nil, apperrors.NewValidationError("username", "Username already taken")
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// VerifyCredentials returns the user when the password matches. Unknown users and wrong
// passwords fail with the same error after comparable work.
func (svc *AuthService) VerifyCredentials(ctx context.Context, username, password string) (*models.UserDB, error) {
	username = NormalizeUsername(username)

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(svc.dummy(), []byte(password))
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID returns the user or apperrors.ErrNotFound.
func (svc *AuthService) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// ChangePassword checks the current password and stores the new one. The hash is only
// rewritten when the password actually changes.
func (svc *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := svc.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		logger.Log.Infow("invalid current password", "user_id", userID)
		return apperrors.ErrInvalidCredentials
	}
	if err := validatePassword("newPassword", newPassword); err != nil {
		return err
	}
	if currentPassword == newPassword {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// Delete removes the account.
func (svc *AuthService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := svc.writer.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// dummy returns a hash compared against when the user does not exist.
func (svc *AuthService) dummy() []byte {
	svc.dummyOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), svc.cost)
		if err != nil {
			logger.Log.Errorw("failed to build dummy hash", "err", err)
		}
		svc.dummyHash = h
	})
	return svc.dummyHash
}
