package service

import (
	"context"
	"errors"
	"time"

	"github.com/Nishukr/Urban-waste-control/internal/auth"
	"github.com/Nishukr/Urban-waste-control/internal/config"
	"github.com/Nishukr/Urban-waste-control/internal/domain"
	"github.com/Nishukr/Urban-waste-control/internal/repository"
	apperrors "github.com/Nishukr/Urban-waste-control/pkg/util"
)

// AuthService coordinates signup and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
}

// NewAuthService builds the service. The signing secret and hashing cost come
// from explicit configuration, not process globals.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account and issues a session token. The plaintext
// password is bcrypt-hashed before anything is persisted; only the hash is
// stored. A duplicate email fails without mutating state.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, string, time.Time, error) {
	if !role.Valid() {
		return nil, "", time.Time{}, apperrors.NewValidationError("role must be public or municipal", nil)
	}

	// Fast-path duplicate check; the UNIQUE constraint in the store settles
	// any race between concurrent signups.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewDuplicateEmail(email)
	} else if !isCode(err, apperrors.CodeUserNotFound) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// Login authenticates by email and password and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	token, exp, err := s.tokenMgr.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func isCode(err error, code string) bool {
	var domainErr *apperrors.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}
