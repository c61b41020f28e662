package domain

import (
	"errors"
	"time"
)

// ApplicationStatus represents the decision state of a job application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

var ErrApplicationNotFound = errors.New("application not found")
var ErrAlreadyApplied = errors.New("already applied to this job")
var ErrOwnJobApplication = errors.New("cannot apply to your own job")
var ErrInvalidApplicationStatus = errors.New("invalid application status")

// Application is a freelancer's bid on a job.
type Application struct {
	ID               int64             `json:"id"`
	JobID            int64             `json:"job_id"`
	FreelancerID     int64             `json:"freelancer_id"`
	ProposalText     string            `json:"proposal_text,omitempty"`
	BidAmount        float64           `json:"bid_amount,omitempty"`
	ProposedDeadline *time.Time        `json:"proposed_deadline,omitempty"`
	Status           ApplicationStatus `json:"status"`
	Seen             bool              `json:"seen"`
	CreatedAt        time.Time         `json:"created_at"`
}
