package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// JobService implements job posting use cases. Role enforcement (only
// clients post jobs) happens at the route level; the service trusts its
// inputs beyond that.
type JobService struct {
	repo ports.JobRepository
	log  zerolog.Logger
}

func NewJobService(repo ports.JobRepository, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, log: log}
}

func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	job := &domain.Job{
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Deadline:    input.Deadline,
		ClientID:    input.ClientID,
		Status:      domain.JobOpen,
		PostedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.log.Error().Err(err).Int64("client_id", input.ClientID).Msg("failed to create job")
		return nil, err
	}

	s.log.Info().Int64("job_id", created.ID).Int64("client_id", created.ClientID).Msg("job posted")
	return created, nil
}

func (s *JobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.repo.List(ctx)
}
