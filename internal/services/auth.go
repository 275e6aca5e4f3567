package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ssemenov2018/task-manager-api/internal/logger"
	"github.com/ssemenov2018/task-manager-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyExists    = errors.New("user with this email already exists")
	ErrUsernameAlreadyExists = errors.New("user with this username already exists")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("incorrect password")
	ErrUserInactive          = errors.New("user is inactive")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, username, passwordHash string) (*models.UserDB, error)
}

// TokenIssuer defines an interface for issuing access tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID int64, email string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new active user and returns a token bound to it.
// Email uniqueness is checked before username uniqueness so that the two
// duplicate cases stay distinguishable by error.
func (svc *AuthService) Register(ctx context.Context, email, username, password string) (string, int64, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email uniqueness", "err", err)
		return "", 0, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return "", 0, ErrEmailAlreadyExists
	}

	existing, err = svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username uniqueness", "err", err)
		return "", 0, err
	}
	if existing != nil {
		logger.Log.Errorw("username already registered", "username", username)
		return "", 0, ErrUsernameAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", 0, err
	}

	user, err := svc.writer.Save(ctx, email, username, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		// A concurrent registration can slip past the uniqueness checks
		// and hit the constraint instead.
		return "", 0, mapUniqueViolation(err)
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", 0, err
	}

	return token, user.ID, nil
}

// mapUniqueViolation converts a Postgres unique-constraint violation into
// the matching duplicate sentinel. Other errors pass through unchanged.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return ErrEmailAlreadyExists
	}
	return ErrUsernameAlreadyExists
}

// Login authenticates a user by email and password and returns a fresh token.
// Unknown email yields ErrUserNotFound, a failed password check
// ErrInvalidCredentials, an inactive account ErrUserInactive.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, int64, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", 0, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", 0, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", 0, ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.Log.Errorw("inactive user login attempt", "email", email)
		return "", 0, ErrUserInactive
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", 0, err
	}

	return token, user.ID, nil
}
