package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// OrderService implements gig purchases.
type OrderService struct {
	orders ports.OrderRepository
	gigs   ports.GigRepository
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, gigs ports.GigRepository, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, gigs: gigs, log: log}
}

// Place creates a pending order snapshotting the gig's current price, so a
// later price change does not affect the order total.
func (s *OrderService) Place(ctx context.Context, gigID, buyerID int64) (*domain.Order, error) {
	gig, err := s.gigs.FindByID(ctx, gigID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		GigID:      gig.ID,
		BuyerID:    buyerID,
		Status:     domain.OrderPending,
		TotalPrice: gig.Price,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("order_id", created.ID).Int64("gig_id", gigID).Int64("buyer_id", buyerID).Msg("order placed")
	return created, nil
}

func (s *OrderService) ListMine(ctx context.Context, buyerID int64) ([]domain.Order, error) {
	return s.orders.ListByBuyer(ctx, buyerID)
}
