package domain

import (
	"errors"
	"time"
)

var ErrConversationNotFound = errors.New("conversation not found")
var ErrNotParticipant = errors.New("not allowed (must be participant)")

// Conversation is a message thread between a client and a freelancer,
// usually anchored to a job.
type Conversation struct {
	ID           int64     `json:"id"`
	JobID        int64     `json:"job_id,omitempty"`
	ClientID     int64     `json:"client_id"`
	FreelancerID int64     `json:"freelancer_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsParticipant reports whether userID is one of the two parties.
func (c *Conversation) IsParticipant(userID int64) bool {
	return userID == c.ClientID || userID == c.FreelancerID
}
