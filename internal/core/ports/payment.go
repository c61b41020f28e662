package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// PaymentRepository defines the persistence interface for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id int64) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}

// InitiatePaymentInput carries the data to start a job payment.
type InitiatePaymentInput struct {
	JobID      int64
	ReceiverID int64
	Amount     float64
	ActorID    int64
}

// PaymentIntent is an initiated payment plus the UPI deep link the client
// opens in a payment app.
type PaymentIntent struct {
	domain.Payment
	UPILink string `json:"upi_link"`
}

// PaymentService defines use-case operations for payments.
type PaymentService interface {
	Initiate(ctx context.Context, input InitiatePaymentInput) (*PaymentIntent, error)
	// Verify records the transaction reference and marks the payment completed.
	Verify(ctx context.Context, paymentID int64, txnID string) (*domain.Payment, error)
}
