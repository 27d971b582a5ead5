package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
	"github.com/spec-kit/account-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTLSeconds),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterInput describes a registration request.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	BirthDate time.Time
}

// Register creates a new account. Email uniqueness is enforced by the
// store's unique constraint rather than a pre-check query, so concurrent
// registrations of the same address cannot race past each other.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		BirthDate:    input.BirthDate,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsEmailUniqueViolation(err) {
			return nil, util.New(util.CodeEmailTaken,
				"The provided email address is already in use.",
				"Unique constraint failed on the fields: (`email`)")
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventUserRegistered,
		UserID: user.ID,
		Payload: events.UserRegisteredPayload{
			Name:  user.Name,
			Email: user.Email,
		},
	})
	return user, nil
}

// Login authenticates email+password and issues a token. rememberMe extends
// the token lifetime to one week.
func (s *AuthService) Login(ctx context.Context, email, password string, rememberMe bool) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", util.New(util.CodeEmailNotFound,
				"Email not registered on platform", "")
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, "", util.New(util.CodePasswordMismatch,
			"Wrong password. Try again", "")
	}

	token, _, err := s.tokenMgr.Issue(user.ID, rememberMe)
	if err != nil {
		return nil, "", err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventUserLoggedIn,
		UserID: user.ID,
		Payload: events.UserLoggedInPayload{
			Email:      user.Email,
			RememberMe: rememberMe,
		},
	})
	return user, token, nil
}

// TokenManager exposes the underlying token manager for the gate.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

// validatePassword enforces the registration password policy: minimum six
// characters, at least one letter and one digit.
func validatePassword(password string) error {
	if len(password) < 6 {
		return util.New(util.CodePasswordTooShort,
			"Password must be at least 6 characters long.",
			"The password did not satisfy the minimum length of 6")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		}
	}
	if !hasLetter || !hasDigit {
		return util.New(util.CodePasswordCharset,
			"Password must contain at least one letter and one number.",
			"The password did not match the required pattern")
	}
	return nil
}
