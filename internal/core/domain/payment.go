package domain

import (
	"errors"
	"time"
)

// PaymentStatus represents the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

var ErrPaymentNotFound = errors.New("payment not found")
var ErrPaymentNotAllowed = errors.New("only the job's client can initiate payment")
var ErrJobNotPayable = errors.New("job status not eligible for payment")
var ErrInvalidAmount = errors.New("invalid amount")

// Payment records a client-to-freelancer transfer for a job.
type Payment struct {
	ID            int64         `json:"id"`
	JobID         int64         `json:"job_id"`
	SenderID      int64         `json:"sender_id"`
	ReceiverID    int64         `json:"receiver_id"`
	Amount        float64       `json:"amount"`
	PaymentMethod string        `json:"payment_method"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
