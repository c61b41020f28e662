package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// ApplicationService implements the bid/decide flow between freelancers and
// job owners.
type ApplicationService struct {
	apps  ports.ApplicationRepository
	jobs  ports.JobRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewApplicationService(apps ports.ApplicationRepository, jobs ports.JobRepository, users ports.UserRepository, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, users: users, log: log}
}

// Apply files a freelancer's bid. Applying to an unknown job is a 404-class
// failure, to the freelancer's own job or twice to the same job a 400-class one.
func (s *ApplicationService) Apply(ctx context.Context, input ports.ApplyInput) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID == input.FreelancerID {
		return nil, domain.ErrOwnJobApplication
	}

	if _, err := s.apps.FindByJobAndFreelancer(ctx, input.JobID, input.FreelancerID); err == nil {
		return nil, domain.ErrAlreadyApplied
	}

	app := &domain.Application{
		JobID:            input.JobID,
		FreelancerID:     input.FreelancerID,
		ProposalText:     input.ProposalText,
		BidAmount:        input.BidAmount,
		ProposedDeadline: input.ProposedDeadline,
		Status:           domain.ApplicationPending,
		CreatedAt:        time.Now().UTC(),
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("application_id", created.ID).Int64("job_id", created.JobID).Msg("application filed")
	return created, nil
}

// ListForJob returns the applications on a job, visible to the job owner only.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID, actorID int64) ([]ports.JobApplication, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireOwner(actorID, job.ClientID); err != nil {
		return nil, err
	}

	apps, err := s.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.JobApplication, 0, len(apps))
	for _, app := range apps {
		view := ports.JobApplication{Application: app, FreelancerName: "Unknown", FreelancerEmail: "Unknown"}
		if freelancer, err := s.users.FindByID(ctx, app.FreelancerID); err == nil {
			view.FreelancerName = freelancer.Name
			view.FreelancerEmail = freelancer.Email
		}
		out = append(out, view)
	}
	return out, nil
}

// ListMine returns the actor's own applications with the targeted job's
// headline fields.
func (s *ApplicationService) ListMine(ctx context.Context, actorID int64) ([]ports.MyApplication, error) {
	apps, err := s.apps.ListByFreelancer(ctx, actorID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.MyApplication, 0, len(apps))
	for _, app := range apps {
		view := ports.MyApplication{Application: app, JobTitle: "Unknown"}
		if job, err := s.jobs.FindByID(ctx, app.JobID); err == nil {
			view.JobTitle = job.Title
			view.JobBudget = job.Budget
		}
		out = append(out, view)
	}
	return out, nil
}

// Decide accepts or rejects an application on behalf of the job owner.
// Acceptance assigns the freelancer, moves the job to in_progress, and
// rejects sibling pending applications in one transaction, so a concurrent
// decision can never produce two accepted bids.
func (s *ApplicationService) Decide(ctx context.Context, input ports.DecideInput) (*domain.Application, error) {
	if input.Status != domain.ApplicationAccepted && input.Status != domain.ApplicationRejected {
		return nil, domain.ErrInvalidApplicationStatus
	}

	app, err := s.apps.FindByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return nil, fmt.Errorf("decide application: %w", err)
	}
	if err := domain.RequireOwner(input.ActorID, job.ClientID); err != nil {
		return nil, err
	}

	switch input.Status {
	case domain.ApplicationAccepted:
		if !job.Status.CanTransitionTo(domain.JobInProgress) {
			return nil, domain.ErrInvalidJobTransition
		}
		if err := s.apps.Accept(ctx, app); err != nil {
			return nil, err
		}
	case domain.ApplicationRejected:
		if err := s.apps.Reject(ctx, app.ID); err != nil {
			return nil, err
		}
	}

	app.Status = input.Status
	s.log.Info().
		Int64("application_id", app.ID).
		Int64("job_id", app.JobID).
		Str("status", string(input.Status)).
		Msg("application decided")
	return app, nil
}
