package ports

import (
	"context"
	"time"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// JobRepository defines the persistence interface for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
}

// CreateJobInput carries the data needed to post a new job.
type CreateJobInput struct {
	Title       string
	Description string
	Budget      int64
	Deadline    *time.Time
	ClientID    int64
}

// JobService defines use-case operations for job postings.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
}
