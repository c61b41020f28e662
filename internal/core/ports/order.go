package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// OrderRepository defines the persistence interface for gig orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Order, error)
}

// OrderService defines use-case operations for gig orders.
type OrderService interface {
	// Place creates a pending order for the gig at its current price.
	Place(ctx context.Context, gigID, buyerID int64) (*domain.Order, error)
	ListMine(ctx context.Context, buyerID int64) ([]domain.Order, error)
}
