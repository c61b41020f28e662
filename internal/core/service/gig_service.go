package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// GigService implements gig listing use cases. Mutations are owner-only.
type GigService struct {
	repo ports.GigRepository
	log  zerolog.Logger
}

func NewGigService(repo ports.GigRepository, log zerolog.Logger) *GigService {
	return &GigService{repo: repo, log: log}
}

func (s *GigService) Create(ctx context.Context, input ports.CreateGigInput) (*domain.Gig, error) {
	now := time.Now().UTC()
	gig := &domain.Gig{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Price:        input.Price,
		DeliveryDays: input.DeliveryDays,
		IsActive:     true,
		FreelancerID: input.FreelancerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if gig.DeliveryDays <= 0 {
		gig.DeliveryDays = 7
	}

	created, err := s.repo.Create(ctx, gig)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("gig_id", created.ID).Int64("freelancer_id", created.FreelancerID).Msg("gig published")
	return created, nil
}

func (s *GigService) Get(ctx context.Context, id int64) (*domain.Gig, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GigService) List(ctx context.Context, category string) ([]domain.Gig, error) {
	return s.repo.List(ctx, category)
}

func (s *GigService) Update(ctx context.Context, input ports.UpdateGigInput) (*domain.Gig, error) {
	gig, err := s.repo.FindByID(ctx, input.GigID)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireOwner(input.ActorID, gig.FreelancerID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		gig.Title = *input.Title
	}
	if input.Description != nil {
		gig.Description = *input.Description
	}
	if input.Category != nil {
		gig.Category = *input.Category
	}
	if input.Price != nil {
		gig.Price = *input.Price
	}
	if input.DeliveryDays != nil {
		gig.DeliveryDays = *input.DeliveryDays
	}
	if input.IsActive != nil {
		gig.IsActive = *input.IsActive
	}
	gig.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, gig)
}

func (s *GigService) Delete(ctx context.Context, id, actorID int64) error {
	gig, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.RequireOwner(actorID, gig.FreelancerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
