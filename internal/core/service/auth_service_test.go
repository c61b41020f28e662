package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, NewPasswordHasher(4), zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, user, err := svc.Register(context.Background(), "Alice", "alice@x.com", "secret123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("expected password to be hashed")
	}
	if user.Role != domain.RoleFreelancer {
		t.Fatalf("unexpected default role: %s", user.Role)
	}

	// The issued token resolves back to the new account.
	resolved, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("token resolved to user %d, want %d", resolved.ID, user.ID)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "Alice", "alice@x.com", "secret123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Other", "alice@x.com", "different"); err != domain.ErrEmailRegistered {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "", "a@x.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "A", "a@x.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, registered, err := svc.Register(context.Background(), "Alice", "alice@x.com", "secret123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@x.com", "wrongpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "secret123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice@x.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("login returned user %d, want %d", user.ID, registered.ID)
	}

	resolved, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if resolved.ID != registered.ID {
		t.Fatalf("token resolved to user %d, want %d", resolved.ID, registered.ID)
	}
}

func TestAuthService_Authenticate_Failures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Authenticate(context.Background(), "garbage"); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for garbage token, got %v", err)
	}

	// Token signed with a different secret.
	other := NewTokenService("other-secret", time.Hour)
	foreign, err := other.Issue("1", 0)
	if err != nil {
		t.Fatalf("issue foreign token: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), foreign); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for foreign token, got %v", err)
	}

	// Valid token whose subject was deleted after issuance.
	token, user, err := svc.Register(context.Background(), "Alice", "alice@x.com", "secret123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	delete(repo.users, user.ID)
	if _, err := svc.Authenticate(context.Background(), token); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for deleted principal, got %v", err)
	}
}
