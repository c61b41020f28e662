package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// ReviewRepository defines the persistence interface for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByJobAndReviewer(ctx context.Context, jobID, reviewerID int64) (*domain.Review, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.Review, error)
	ListByReviewee(ctx context.Context, revieweeID int64) ([]domain.Review, error)
}

// CreateReviewInput carries the data for a new review.
type CreateReviewInput struct {
	JobID      int64
	ReviewerID int64
	RevieweeID int64
	Rating     int
	Text       string
}

// ReviewService defines use-case operations for reviews.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Review, error)
}
