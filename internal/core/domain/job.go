package domain

import (
	"errors"
	"time"
)

// JobStatus represents the lifecycle state of a job posting.
type JobStatus string

const (
	JobOpen       JobStatus = "open"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

// validJobTransitions defines the allowed state machine transitions.
var validJobTransitions = map[JobStatus][]JobStatus{
	JobOpen:       {JobInProgress, JobCancelled},
	JobInProgress: {JobCompleted, JobCancelled},
}

var ErrJobNotFound = errors.New("job not found")
var ErrInvalidJobTransition = errors.New("invalid job status transition")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range validJobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Job is a client's posting that freelancers apply to.
type Job struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Budget       int64      `json:"budget"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	ClientID     int64      `json:"client_id"`
	FreelancerID int64      `json:"freelancer_id,omitempty"`
	Amount       int64      `json:"amount,omitempty"`
	Status       JobStatus  `json:"status"`
	PostedAt     time.Time  `json:"posted_at"`
}
