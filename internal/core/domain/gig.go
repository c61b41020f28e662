package domain

import (
	"errors"
	"time"
)

var ErrGigNotFound = errors.New("gig not found")

// Gig is a fixed-price service listing offered by a freelancer.
type Gig struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	DeliveryDays int       `json:"delivery_days"`
	IsActive     bool      `json:"is_active"`
	FreelancerID int64     `json:"freelancer_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
