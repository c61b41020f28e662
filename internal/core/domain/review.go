package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")
var ErrReviewExists = errors.New("review already submitted")
var ErrInvalidReviewee = errors.New("invalid reviewee")
var ErrReviewNotJobParty = errors.New("you are not part of this job")
var ErrJobNotCompleted = errors.New("job not completed yet")

// Review is feedback left by one job party about the other after completion.
type Review struct {
	ID         int64     `json:"id"`
	JobID      int64     `json:"job_id"`
	ReviewerID int64     `json:"reviewer_id"`
	RevieweeID int64     `json:"reviewee_id"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text"`
	Feedback   string    `json:"feedback,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
