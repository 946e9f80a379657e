package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/core/domain"
	"github.com/99minutos/todo-service/internal/core/ports"
)

const timingEqualizerPassword = "todo-service:unknown-account"

// AuthService implements signup and login.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	log    zerolog.Logger

	dummyMu   sync.Mutex
	dummyHash string
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Signup creates an account and returns it together with a session token.
// Uniqueness is left to the repository so two concurrent signups for the
// same address cannot both succeed.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.log.Info().Str("email", email).Msg("signup rejected: email taken")
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID, created.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Msg("user signed up")
	created.PasswordHash = ""
	return created, token, nil
}

// Login verifies credentials. An unknown email and a wrong password are
// indistinguishable to the caller, including in response time.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, err
		}
		s.hasher.Verify(ctx, password, s.equalizerHash(ctx))
		return "", nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(ctx, password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return token, user, nil
}

// equalizerHash lazily builds a hash at the configured cost, used to burn
// the same amount of work for unknown accounts as for real ones. A failed
// build is retried on the next call.
func (s *AuthService) equalizerHash(ctx context.Context) string {
	s.dummyMu.Lock()
	defer s.dummyMu.Unlock()
	if s.dummyHash != "" {
		return s.dummyHash
	}
	h, err := s.hasher.Hash(context.WithoutCancel(ctx), timingEqualizerPassword)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not build timing equalizer hash")
		return ""
	}
	s.dummyHash = h
	return h
}
