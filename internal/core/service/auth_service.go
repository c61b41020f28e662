package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// AuthService implements registration, login, and principal resolution.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenService
	hasher PasswordHasher
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService, hasher PasswordHasher, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, hasher: hasher, log: log}
}

// Register creates a freelancer account and returns a fresh bearer token.
// A duplicate email fails with domain.ErrEmailRegistered.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailRegistered
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleFreelancer,
		JoinedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(strconv.FormatInt(created.ID, 10), 0)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Msg("user registered")
	return token, created, nil
}

// Login verifies the credentials and returns a bearer token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(strconv.FormatInt(user.ID, 10), 0)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Authenticate verifies the token and resolves its subject to a stored
// user. Any failure — bad token, expired token, non-numeric subject, or a
// subject with no matching account — yields domain.ErrUnauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		// Token validity does not imply the principal still exists.
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
