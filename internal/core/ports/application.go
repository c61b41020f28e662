package ports

import (
	"context"
	"time"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// ApplicationRepository defines the persistence interface for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id int64) (*domain.Application, error)
	FindByJobAndFreelancer(ctx context.Context, jobID, freelancerID int64) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error)
	ListByFreelancer(ctx context.Context, freelancerID int64) ([]domain.Application, error)
	// Accept marks the application accepted, assigns the freelancer to the
	// job, moves the job to in_progress, and rejects every sibling pending
	// application — all in a single transaction.
	Accept(ctx context.Context, app *domain.Application) error
	Reject(ctx context.Context, id int64) error
	CountPendingForClient(ctx context.Context, clientID int64) (int64, error)
	CountUnseenDecided(ctx context.Context, freelancerID int64) (int64, error)
}

// ApplyInput carries a freelancer's bid on a job.
type ApplyInput struct {
	JobID            int64
	FreelancerID     int64
	ProposalText     string
	BidAmount        float64
	ProposedDeadline *time.Time
}

// JobApplication is the job owner's view of one application, enriched with
// the applicant's public identity.
type JobApplication struct {
	domain.Application
	FreelancerName  string `json:"freelancer_name"`
	FreelancerEmail string `json:"freelancer_email"`
}

// MyApplication is the applicant's view of one application, enriched with
// the job it targets.
type MyApplication struct {
	domain.Application
	JobTitle  string `json:"job_title"`
	JobBudget int64  `json:"job_budget"`
}

// DecideInput carries the job owner's accept/reject decision.
type DecideInput struct {
	ApplicationID int64
	Status        domain.ApplicationStatus
	ActorID       int64
}

// ApplicationService defines use-case operations for job applications.
type ApplicationService interface {
	Apply(ctx context.Context, input ApplyInput) (*domain.Application, error)
	ListForJob(ctx context.Context, jobID, actorID int64) ([]JobApplication, error)
	ListMine(ctx context.Context, actorID int64) ([]MyApplication, error)
	Decide(ctx context.Context, input DecideInput) (*domain.Application, error)
}
