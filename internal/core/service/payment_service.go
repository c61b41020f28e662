package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// Fallback VPA used while freelancer profiles carry no payment address.
const defaultVPA = "test@upi"

// PaymentService implements the UPI payment flow between a job's client and
// its freelancer.
type PaymentService struct {
	payments ports.PaymentRepository
	jobs     ports.JobRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewPaymentService(payments ports.PaymentRepository, jobs ports.JobRepository, users ports.UserRepository, log zerolog.Logger) *PaymentService {
	return &PaymentService{payments: payments, jobs: jobs, users: users, log: log}
}

// Initiate records a pending payment and builds the UPI deep link the
// client's payment app opens. Only the job's client may initiate, and only
// while the job is in progress or completed.
func (s *PaymentService) Initiate(ctx context.Context, input ports.InitiatePaymentInput) (*ports.PaymentIntent, error) {
	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, domain.ErrPaymentNotAllowed
	}
	if job.ClientID != input.ActorID {
		return nil, domain.ErrPaymentNotAllowed
	}
	if job.Status != domain.JobInProgress && job.Status != domain.JobCompleted {
		return nil, domain.ErrJobNotPayable
	}
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	freelancer, err := s.users.FindByID(ctx, input.ReceiverID)
	if err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		JobID:         input.JobID,
		SenderID:      input.ActorID,
		ReceiverID:    input.ReceiverID,
		Amount:        input.Amount,
		PaymentMethod: "upi",
		Status:        domain.PaymentPending,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.payments.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("payment_id", created.ID).
		Int64("job_id", created.JobID).
		Float64("amount", created.Amount).
		Msg("payment initiated")

	return &ports.PaymentIntent{
		Payment: *created,
		UPILink: upiLink(defaultVPA, freelancer.Name, created.Amount),
	}, nil
}

// Verify stores the transaction reference and marks the payment completed.
// Manual verification: the reference is recorded as the payment method.
func (s *PaymentService) Verify(ctx context.Context, paymentID int64, txnID string) (*domain.Payment, error) {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	payment.Status = domain.PaymentCompleted
	payment.PaymentMethod = txnID

	updated, err := s.payments.Update(ctx, payment)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("payment_id", updated.ID).Msg("payment verified")
	return updated, nil
}

// upiLink builds a upi://pay deep link understood by UPI payment apps.
func upiLink(vpa, payeeName string, amount float64) string {
	q := url.Values{}
	q.Set("pa", vpa)
	q.Set("pn", payeeName)
	q.Set("am", fmt.Sprintf("%.2f", amount))
	q.Set("cu", "INR")
	q.Set("tn", "Job Payment")
	return "upi://pay?" + q.Encode()
}
