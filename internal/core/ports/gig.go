package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// GigRepository defines the persistence interface for gig listings.
type GigRepository interface {
	Create(ctx context.Context, gig *domain.Gig) (*domain.Gig, error)
	FindByID(ctx context.Context, id int64) (*domain.Gig, error)
	// List returns active gigs, optionally filtered by category.
	List(ctx context.Context, category string) ([]domain.Gig, error)
	Update(ctx context.Context, gig *domain.Gig) (*domain.Gig, error)
	Delete(ctx context.Context, id int64) error
}

// CreateGigInput carries the data needed to publish a gig.
type CreateGigInput struct {
	Title        string
	Description  string
	Category     string
	Price        float64
	DeliveryDays int
	FreelancerID int64
}

// UpdateGigInput carries a partial gig update. Nil fields are left untouched.
type UpdateGigInput struct {
	GigID        int64
	ActorID      int64
	Title        *string
	Description  *string
	Category     *string
	Price        *float64
	DeliveryDays *int
	IsActive     *bool
}

// GigService defines use-case operations for gig listings.
type GigService interface {
	Create(ctx context.Context, input CreateGigInput) (*domain.Gig, error)
	Get(ctx context.Context, id int64) (*domain.Gig, error)
	List(ctx context.Context, category string) ([]domain.Gig, error)
	Update(ctx context.Context, input UpdateGigInput) (*domain.Gig, error)
	Delete(ctx context.Context, id, actorID int64) error
}
