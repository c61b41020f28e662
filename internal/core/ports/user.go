package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// UpdateProfileInput carries a partial profile update for the current user.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	UserID   int64
	Name     *string
	Phone    *string
	Bio      *string
	Skills   *string
	Location *string
	Avatar   *string
}

// UserService defines profile operations on user accounts.
type UserService interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error)
}

// NotificationService surfaces badge counts derived from application state.
type NotificationService interface {
	// PendingApplications counts pending applications on jobs owned by clientID.
	PendingApplications(ctx context.Context, clientID int64) (int64, error)
	// UnseenResponses counts decided but unseen applications of freelancerID.
	UnseenResponses(ctx context.Context, freelancerID int64) (int64, error)
}
