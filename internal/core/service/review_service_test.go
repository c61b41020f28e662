package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type stubReviewRepo struct {
	reviews map[int64]*domain.Review
	nextID  int64
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[int64]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	r.nextID++
	clone := *review
	clone.ID = r.nextID
	r.reviews[clone.ID] = &clone
	created := clone
	return &created, nil
}

func (r *stubReviewRepo) FindByJobAndReviewer(_ context.Context, jobID, reviewerID int64) (*domain.Review, error) {
	for _, rev := range r.reviews {
		if rev.JobID == jobID && rev.ReviewerID == reviewerID {
			clone := *rev
			return &clone, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) ListByJob(_ context.Context, jobID int64) ([]domain.Review, error) {
	var out []domain.Review
	for _, rev := range r.reviews {
		if rev.JobID == jobID {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) ListByReviewee(_ context.Context, revieweeID int64) ([]domain.Review, error) {
	var out []domain.Review
	for _, rev := range r.reviews {
		if rev.RevieweeID == revieweeID {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func newReviewFixture(t *testing.T, status domain.JobStatus) (*ReviewService, *domain.Job) {
	t.Helper()
	jobs := newStubJobRepo()
	job, err := jobs.Create(context.Background(), &domain.Job{
		Title:        "Build API",
		ClientID:     1,
		FreelancerID: 2,
		Status:       status,
		PostedAt:     time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return NewReviewService(newStubReviewRepo(), jobs, zerolog.Nop()), job
}

func TestReviewService_Create(t *testing.T) {
	svc, job := newReviewFixture(t, domain.JobCompleted)

	review, err := svc.Create(context.Background(), ports.CreateReviewInput{
		JobID:      job.ID,
		ReviewerID: 1,
		RevieweeID: 2,
		Rating:     5,
		Text:       "great work",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if review.ID == 0 || review.Rating != 5 {
		t.Fatalf("unexpected review: %+v", review)
	}
}

func TestReviewService_Create_NotJobParty(t *testing.T) {
	svc, job := newReviewFixture(t, domain.JobCompleted)

	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{JobID: job.ID, ReviewerID: 9, RevieweeID: 2, Rating: 4}); err != domain.ErrReviewNotJobParty {
		t.Fatalf("expected ErrReviewNotJobParty, got %v", err)
	}
}

func TestReviewService_Create_InvalidReviewee(t *testing.T) {
	svc, job := newReviewFixture(t, domain.JobCompleted)

	// Reviewee outside the job.
	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{JobID: job.ID, ReviewerID: 1, RevieweeID: 9, Rating: 4}); err != domain.ErrInvalidReviewee {
		t.Fatalf("expected ErrInvalidReviewee, got %v", err)
	}
	// Self-review.
	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{JobID: job.ID, ReviewerID: 1, RevieweeID: 1, Rating: 4}); err != domain.ErrInvalidReviewee {
		t.Fatalf("expected ErrInvalidReviewee for self-review, got %v", err)
	}
}

func TestReviewService_Create_JobNotCompleted(t *testing.T) {
	svc, job := newReviewFixture(t, domain.JobInProgress)

	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{JobID: job.ID, ReviewerID: 1, RevieweeID: 2, Rating: 4}); err != domain.ErrJobNotCompleted {
		t.Fatalf("expected ErrJobNotCompleted, got %v", err)
	}
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	svc, job := newReviewFixture(t, domain.JobCompleted)

	input := ports.CreateReviewInput{JobID: job.ID, ReviewerID: 1, RevieweeID: 2, Rating: 5}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), input); err != domain.ErrReviewExists {
		t.Fatalf("expected ErrReviewExists, got %v", err)
	}
}
