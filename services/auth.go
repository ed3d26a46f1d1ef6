package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/auth"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// UserReader defines read-only operations for users. Finders return nil
// (not an error) when no row matches.
type UserReader interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Add(ctx context.Context, user *models.User) error
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	logger zerolog.Logger
}

func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		logger: log.With().Str("serviceName", "authService").Logger(),
	}
}

// Register creates a new user with a hashed password. The username conflict
// is reported before the email conflict when both collide.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" {
		return nil, errs.NewMissingRequiredFieldError("username")
	}
	if email == "" {
		return nil, errs.NewMissingRequiredFieldError("email")
	}
	if password == "" {
		return nil, errs.NewMissingRequiredFieldError("password")
	}

	existing, err := svc.reader.FindByUsername(ctx, username)
	if err != nil {
		return nil, errs.NewDatabaseError("find user by username", "user", err)
	}
	if existing != nil {
		return nil, errs.NewAlreadyExists("username")
	}

	existing, err = svc.reader.FindByEmail(ctx, email)
	if err != nil {
		return nil, errs.NewDatabaseError("find user by email", "user", err)
	}
	if existing != nil {
		return nil, errs.NewAlreadyExists("email")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		svc.logger.Error().Err(err).Msg("failed to hash password")
		return nil, errs.NewInternalError("failed to hash password")
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := svc.writer.Add(ctx, user); err != nil {
		// A concurrent register can slip past the checks above; the unique
		// indexes catch it here and it surfaces as a conflict.
		return nil, errs.NewDatabaseError("create", "user", err)
	}

	svc.logger.Info().Str("username", username).Msg("user registered")
	return user, nil
}

// Authenticate verifies credentials and returns the user. Unknown username
// and wrong password are indistinguishable to the caller.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := svc.reader.FindByUsername(ctx, username)
	if err != nil {
		return nil, errs.NewDatabaseError("find user by username", "user", err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		svc.logger.Warn().Str("username", username).Msg("failed login attempt")
		return nil, errs.NewInvalidCredentials()
	}
	return user, nil
}
