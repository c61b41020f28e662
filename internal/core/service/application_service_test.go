package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type stubJobRepo struct {
	jobs   map[int64]*domain.Job
	nextID int64
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[int64]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.nextID++
	clone := *job
	clone.ID = r.nextID
	r.jobs[clone.ID] = &clone
	created := clone
	return &created, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id int64) (*domain.Job, error) {
	if j, ok := r.jobs[id]; ok {
		clone := *j
		return &clone, nil
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) List(_ context.Context) ([]domain.Job, error) {
	out := make([]domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

type stubAppRepo struct {
	apps     map[int64]*domain.Application
	nextID   int64
	accepted []int64 // application ids passed to Accept
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{apps: make(map[int64]*domain.Application)}
}

func (r *stubAppRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	r.nextID++
	clone := *app
	clone.ID = r.nextID
	r.apps[clone.ID] = &clone
	created := clone
	return &created, nil
}

func (r *stubAppRepo) FindByID(_ context.Context, id int64) (*domain.Application, error) {
	if a, ok := r.apps[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubAppRepo) FindByJobAndFreelancer(_ context.Context, jobID, freelancerID int64) (*domain.Application, error) {
	for _, a := range r.apps {
		if a.JobID == jobID && a.FreelancerID == freelancerID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubAppRepo) ListByJob(_ context.Context, jobID int64) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAppRepo) ListByFreelancer(_ context.Context, freelancerID int64) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range r.apps {
		if a.FreelancerID == freelancerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAppRepo) Accept(_ context.Context, app *domain.Application) error {
	r.accepted = append(r.accepted, app.ID)
	r.apps[app.ID].Status = domain.ApplicationAccepted
	for _, other := range r.apps {
		if other.JobID == app.JobID && other.ID != app.ID && other.Status == domain.ApplicationPending {
			other.Status = domain.ApplicationRejected
		}
	}
	return nil
}

func (r *stubAppRepo) Reject(_ context.Context, id int64) error {
	if a, ok := r.apps[id]; ok {
		a.Status = domain.ApplicationRejected
		return nil
	}
	return domain.ErrApplicationNotFound
}

func (r *stubAppRepo) CountPendingForClient(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (r *stubAppRepo) CountUnseenDecided(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func newApplicationFixture(t *testing.T) (*ApplicationService, *stubAppRepo, *stubJobRepo, *domain.Job) {
	t.Helper()
	apps := newStubAppRepo()
	jobs := newStubJobRepo()
	users := newStubUserRepo()
	users.users[1] = &domain.User{ID: 1, Name: "Client", Email: "client@x.com", Role: domain.RoleClient}
	users.users[2] = &domain.User{ID: 2, Name: "Fred", Email: "fred@x.com", Role: domain.RoleFreelancer}
	users.users[3] = &domain.User{ID: 3, Name: "Gina", Email: "gina@x.com", Role: domain.RoleFreelancer}

	job, err := jobs.Create(context.Background(), &domain.Job{
		Title:    "Build API",
		ClientID: 1,
		Budget:   500,
		Status:   domain.JobOpen,
		PostedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return NewApplicationService(apps, jobs, users, zerolog.Nop()), apps, jobs, job
}

func TestApplicationService_Apply(t *testing.T) {
	svc, _, _, job := newApplicationFixture(t)

	app, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: job.ID, FreelancerID: 2, BidAmount: 450})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("expected pending, got %s", app.Status)
	}
}

func TestApplicationService_Apply_UnknownJob(t *testing.T) {
	svc, _, _, _ := newApplicationFixture(t)

	if _, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: 999, FreelancerID: 2}); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationService_Apply_OwnJob(t *testing.T) {
	svc, _, _, job := newApplicationFixture(t)

	if _, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: job.ID, FreelancerID: 1}); err != domain.ErrOwnJobApplication {
		t.Fatalf("expected ErrOwnJobApplication, got %v", err)
	}
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	svc, _, _, job := newApplicationFixture(t)

	if _, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: job.ID, FreelancerID: 2}); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if _, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: job.ID, FreelancerID: 2}); err != domain.ErrAlreadyApplied {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplicationService_ListForJob_OwnerOnly(t *testing.T) {
	svc, _, _, job := newApplicationFixture(t)

	if _, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: job.ID, FreelancerID: 2}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if _, err := svc.ListForJob(context.Background(), job.ID, 2); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	views, err := svc.ListForJob(context.Background(), job.ID, 1)
	if err != nil {
		t.Fatalf("ListForJob returned error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 application, got %d", len(views))
	}
	if views[0].FreelancerName != "Fred" || views[0].FreelancerEmail != "fred@x.com" {
		t.Fatalf("applicant identity not enriched: %+v", views[0])
	}
}

func TestApplicationService_Decide_Accept(t *testing.T) {
	svc, apps, _, job := newApplicationFixture(t)

	first, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: job.ID, FreelancerID: 2})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	second, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: job.ID, FreelancerID: 3})
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}

	// Non-owner cannot decide.
	if _, err := svc.Decide(context.Background(), ports.DecideInput{ApplicationID: first.ID, Status: domain.ApplicationAccepted, ActorID: 2}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	decided, err := svc.Decide(context.Background(), ports.DecideInput{ApplicationID: first.ID, Status: domain.ApplicationAccepted, ActorID: 1})
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if decided.Status != domain.ApplicationAccepted {
		t.Fatalf("expected accepted, got %s", decided.Status)
	}
	if len(apps.accepted) != 1 || apps.accepted[0] != first.ID {
		t.Fatalf("transactional accept not invoked for application %d", first.ID)
	}
	if apps.apps[second.ID].Status != domain.ApplicationRejected {
		t.Fatalf("sibling application not rejected")
	}
}

func TestApplicationService_Decide_AcceptOnClosedJob(t *testing.T) {
	svc, apps, jobs, job := newApplicationFixture(t)

	app, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: job.ID, FreelancerID: 2})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	jobs.jobs[job.ID].Status = domain.JobCancelled

	if _, err := svc.Decide(context.Background(), ports.DecideInput{ApplicationID: app.ID, Status: domain.ApplicationAccepted, ActorID: 1}); err != domain.ErrInvalidJobTransition {
		t.Fatalf("expected ErrInvalidJobTransition, got %v", err)
	}
	if len(apps.accepted) != 0 {
		t.Fatalf("accept reached the repository for a cancelled job")
	}
	if apps.apps[app.ID].Status != domain.ApplicationPending {
		t.Fatalf("application status changed, got %s", apps.apps[app.ID].Status)
	}
}

func TestApplicationService_Decide_InvalidStatus(t *testing.T) {
	svc, _, _, job := newApplicationFixture(t)

	app, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: job.ID, FreelancerID: 2})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if _, err := svc.Decide(context.Background(), ports.DecideInput{ApplicationID: app.ID, Status: "withdrawn", ActorID: 1}); err != domain.ErrInvalidApplicationStatus {
		t.Fatalf("expected ErrInvalidApplicationStatus, got %v", err)
	}
}
