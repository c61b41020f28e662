package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// ReviewService implements post-completion reviews between job parties.
type ReviewService struct {
	reviews ports.ReviewRepository
	jobs    ports.JobRepository
	log     zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, jobs ports.JobRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, jobs: jobs, log: log}
}

// Create validates the full review chain: the job exists and is completed,
// the reviewer is one of its parties, the reviewee is the other party, and
// the reviewer has not already reviewed this job.
func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}

	if input.ReviewerID != job.ClientID && input.ReviewerID != job.FreelancerID {
		return nil, domain.ErrReviewNotJobParty
	}
	if (input.RevieweeID != job.ClientID && input.RevieweeID != job.FreelancerID) || input.RevieweeID == input.ReviewerID {
		return nil, domain.ErrInvalidReviewee
	}
	if job.Status != domain.JobCompleted {
		return nil, domain.ErrJobNotCompleted
	}

	if _, err := s.reviews.FindByJobAndReviewer(ctx, input.JobID, input.ReviewerID); err == nil {
		return nil, domain.ErrReviewExists
	}

	review := &domain.Review{
		JobID:      input.JobID,
		ReviewerID: input.ReviewerID,
		RevieweeID: input.RevieweeID,
		Rating:     input.Rating,
		ReviewText: input.Text,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("review_id", created.ID).Int64("job_id", created.JobID).Msg("review submitted")
	return created, nil
}

func (s *ReviewService) ListByJob(ctx context.Context, jobID int64) ([]domain.Review, error) {
	return s.reviews.ListByJob(ctx, jobID)
}

func (s *ReviewService) ListByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	return s.reviews.ListByReviewee(ctx, userID)
}
