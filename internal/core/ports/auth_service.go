package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// AuthService covers registration, login, and the auth gate's principal
// resolution.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Authenticate verifies a bearer token and resolves its subject to a
	// stored user. A valid token whose subject no longer exists fails with
	// domain.ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
