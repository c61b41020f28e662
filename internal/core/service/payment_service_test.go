package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type stubPaymentRepo struct {
	payments map[int64]*domain.Payment
	nextID   int64
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[int64]*domain.Payment)}
}

func (r *stubPaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	r.nextID++
	clone := *payment
	clone.ID = r.nextID
	r.payments[clone.ID] = &clone
	created := clone
	return &created, nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id int64) (*domain.Payment, error) {
	if p, ok := r.payments[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPaymentNotFound
}

func (r *stubPaymentRepo) Update(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if _, ok := r.payments[payment.ID]; !ok {
		return nil, domain.ErrPaymentNotFound
	}
	clone := *payment
	r.payments[payment.ID] = &clone
	updated := clone
	return &updated, nil
}

func newPaymentFixture(t *testing.T, status domain.JobStatus) (*PaymentService, *domain.Job) {
	t.Helper()
	jobs := newStubJobRepo()
	users := newStubUserRepo()
	users.users[2] = &domain.User{ID: 2, Name: "Fred", Email: "fred@x.com", Role: domain.RoleFreelancer}

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
	return NewPaymentService(newStubPaymentRepo(), jobs, users, zerolog.Nop()), job
}

func TestPaymentService_Initiate(t *testing.T) {
	svc, job := newPaymentFixture(t, domain.JobInProgress)

	intent, err := svc.Initiate(context.Background(), ports.InitiatePaymentInput{
		JobID:      job.ID,
		ReceiverID: 2,
		Amount:     499.5,
		ActorID:    1,
	})
	if err != nil {
		t.Fatalf("Initiate returned error: %v", err)
	}
	if intent.Status != domain.PaymentPending {
		t.Fatalf("expected pending payment, got %s", intent.Status)
	}
	if !strings.HasPrefix(intent.UPILink, "upi://pay?") {
		t.Fatalf("unexpected UPI link: %s", intent.UPILink)
	}
	for _, part := range []string{"pa=test%40upi", "am=499.50", "cu=INR"} {
		if !strings.Contains(intent.UPILink, part) {
			t.Fatalf("UPI link missing %q: %s", part, intent.UPILink)
		}
	}
}

func TestPaymentService_Initiate_NotClient(t *testing.T) {
	svc, job := newPaymentFixture(t, domain.JobInProgress)

	if _, err := svc.Initiate(context.Background(), ports.InitiatePaymentInput{JobID: job.ID, ReceiverID: 2, Amount: 100, ActorID: 2}); err != domain.ErrPaymentNotAllowed {
		t.Fatalf("expected ErrPaymentNotAllowed, got %v", err)
	}
}

func TestPaymentService_Initiate_JobNotPayable(t *testing.T) {
	svc, job := newPaymentFixture(t, domain.JobOpen)

	if _, err := svc.Initiate(context.Background(), ports.InitiatePaymentInput{JobID: job.ID, ReceiverID: 2, Amount: 100, ActorID: 1}); err != domain.ErrJobNotPayable {
		t.Fatalf("expected ErrJobNotPayable, got %v", err)
	}
}

func TestPaymentService_Initiate_InvalidAmount(t *testing.T) {
	svc, job := newPaymentFixture(t, domain.JobInProgress)

	if _, err := svc.Initiate(context.Background(), ports.InitiatePaymentInput{JobID: job.ID, ReceiverID: 2, Amount: 0, ActorID: 1}); err != domain.ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestPaymentService_Verify(t *testing.T) {
	svc, job := newPaymentFixture(t, domain.JobInProgress)

	intent, err := svc.Initiate(context.Background(), ports.InitiatePaymentInput{JobID: job.ID, ReceiverID: 2, Amount: 100, ActorID: 1})
	if err != nil {
		t.Fatalf("Initiate returned error: %v", err)
	}

	verified, err := svc.Verify(context.Background(), intent.ID, "TXN123")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if verified.Status != domain.PaymentCompleted {
		t.Fatalf("expected completed, got %s", verified.Status)
	}
	if verified.PaymentMethod != "TXN123" {
		t.Fatalf("transaction reference not recorded: %s", verified.PaymentMethod)
	}
}
