package services

import (
	"context"
	"errors"
	"strings"

	"github.com/vkamarthi/heritage-collect/internal/logger"
	"github.com/vkamarthi/heritage-collect/internal/models"
	"github.com/vkamarthi/heritage-collect/internal/repositories"
)

// Error variables
var (
	ErrInvalidEmail      = errors.New("invalid gmail address")
	ErrNameRequired      = errors.New("name is required")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserDoesNotExist  = errors.New("user does not exist")
	ErrAccessDenied      = errors.New("access denied")
)

// emailDomain is the recognized domain marker; addresses outside it are
// rejected at both signup and login.
const emailDomain = "@gmail.com"

// UserReader defines read-only operations for users.
type UserReader interface {
	Exists(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, name string) error
}

// AuthService handles signup, login and admin login.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	adminEmails map[string]struct{}
}

// NewAuthService creates a new AuthService. adminEmails is the fixed
// administrator allow-list supplied at startup.
func NewAuthService(reader UserReader, writer UserWriter, adminEmails []string) *AuthService {
	allow := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		allow[email] = struct{}{}
	}
	return &AuthService{
		reader:      reader,
		writer:      writer,
		adminEmails: allow,
	}
}

// Signup creates a new user. The email becomes the immutable identifier.
func (svc *AuthService) Signup(ctx context.Context, email, name string) error {
	if !strings.HasSuffix(email, emailDomain) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}

	exists, err := svc.reader.Exists(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if exists {
		return ErrUserAlreadyExists
	}

	if err := svc.writer.Save(ctx, email, name); err != nil {
		// Concurrent signups race on the store's uniqueness constraint;
		// the loser gets the same outcome as a sequential duplicate.
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates an existing user by email match alone and reports
// whether the email is on the admin allow-list. Allow-list membership is
// evaluated only here; it is not re-checked during the session.
func (svc *AuthService) Login(ctx context.Context, email string) (*models.UserDB, bool, error) {
	if !strings.HasSuffix(email, emailDomain) {
		return nil, false, ErrInvalidEmail
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, false, err
	}
	if user == nil {
		return nil, false, ErrUserDoesNotExist
	}

	_, isAdmin := svc.adminEmails[email]
	return user, isAdmin, nil
}

// AdminLogin authenticates an administrator purely by allow-list membership
// and returns the display name to use. An admin without a user row is
// labeled "Admin".
func (svc *AuthService) AdminLogin(ctx context.Context, email string) (string, error) {
	if _, ok := svc.adminEmails[email]; !ok {
		return "", ErrAccessDenied
	}

	name := "Admin"
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get admin user", "err", err)
		return "", err
	}
	if user != nil && user.Name != "" {
		name = user.Name
	}

	return name, nil
}
