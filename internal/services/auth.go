package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/jwt"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("incorrect email or password")
	ErrPasswordTooLong        = errors.New("password exceeds maximum length")
	ErrUserNotFound           = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email string, passwordHash, googleID *string) (*models.UserDB, error)
	LinkGoogleID(ctx context.Context, userID uuid.UUID, googleID, name string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, authType string) (string, error)
}

// GoogleProfile carries the claims received from Google OAuth.
type GoogleProfile struct {
	Sub   string
	Name  string
	Email string
}

// AuthService handles signup and both login paths.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Signup registers a new email/password user and returns the created profile.
func (svc *AuthService) Signup(ctx context.Context, name, email, password string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return nil, ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	hash := string(hashed)
	user, err := svc.writer.Save(ctx, name, email, &hash, nil)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates an email/password user and returns a JWT token.
// A missing user and a wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil || user.PasswordHash == nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, jwt.AuthTypeEmail)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// GoogleLogin authenticates a Google OAuth user. An account is looked up by
// Google subject id, linked by email when the user signed up with a password
// first, and created password-less otherwise.
func (svc *AuthService) GoogleLogin(ctx context.Context, profile GoogleProfile) (string, error) {
	user, err := svc.reader.GetByGoogleID(ctx, profile.Sub)
	if err != nil {
		logger.Log.Errorw("failed to get user by google id", "err", err)
		return "", err
	}

	if user == nil {
		existing, err := svc.reader.GetByEmail(ctx, profile.Email)
		if err != nil {
			logger.Log.Errorw("failed to get user by email", "err", err)
			return "", err
		}
		if existing != nil {
			user, err = svc.writer.LinkGoogleID(ctx, existing.UserID, profile.Sub, profile.Name)
			if err != nil {
				logger.Log.Errorw("failed to link google id", "err", err)
				return "", err
			}
			logger.Log.Infow("linked google id to existing user", "email", profile.Email)
		} else {
			googleID := profile.Sub
			user, err = svc.writer.Save(ctx, profile.Name, profile.Email, nil, &googleID)
			if err != nil {
				logger.Log.Errorw("failed to create google user", "err", err)
				return "", err
			}
			logger.Log.Infow("created new google user", "email", profile.Email)
		}
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, jwt.AuthTypeGoogle)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// GetUser returns the profile of the given user.
func (svc *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
