package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/blog-platform/blog-api/internal/core/domain"
	"github.com/blog-platform/blog-api/internal/core/ports"
)

const usernameMaxLen = 50

// AuthService implements registration and login. A nil limiter disables
// login throttling.
type AuthService struct {
	users   ports.UserRepository
	tokens  ports.TokenService
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, limiter: limiter, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username, email and password are required", domain.ErrValidation)
	}
	if len(username) > usernameMaxLen {
		return nil, "", fmt.Errorf("%w: username cannot exceed %d characters", domain.ErrValidation, usernameMaxLen)
	}

	// Pre-check both unique fields so the caller gets a field-specific
	// message. The unique indexes still close the race at insert time.
	if existing, err := s.users.FindByLogin(ctx, username); err == nil {
		if existing.Email == username {
			return nil, "", domain.ErrEmailTaken
		}
		return nil, "", domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}
	if _, err := s.users.FindByLogin(ctx, email); err == nil {
		return nil, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, token, nil
}

// Login authenticates by username or email. A missing user and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, login, password string) (*domain.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	if blocked, err := s.tooManyAttempts(ctx, login); err != nil {
		// The limiter failing open is preferable to locking everyone out.
		s.logger.Warn().Err(err).Msg("login limiter unavailable")
	} else if blocked {
		return nil, "", domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, login)
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, login)
		return nil, "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, login); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login attempts")
		}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

func (s *AuthService) tooManyAttempts(ctx context.Context, login string) (bool, error) {
	if s.limiter == nil {
		return false, nil
	}
	return s.limiter.TooMany(ctx, login)
}

func (s *AuthService) recordFailure(ctx context.Context, login string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, login); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record login attempt")
	}
}
