package domain

import (
	"errors"
	"time"
)

const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
	RoleAdmin      = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailRegistered = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleFreelancer || role == RoleAdmin
}

// Profile holds the free-form public profile fields a user can edit.
type Profile struct {
	Bio      string `json:"bio,omitempty" bson:"bio,omitempty"`
	Skills   string `json:"skills,omitempty" bson:"skills,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Avatar   string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

// User is the authenticated principal attached to a request.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Verified     bool      `json:"verified"`
	JoinedAt     time.Time `json:"joined_at"`
	Profile      Profile   `json:"profile_data"`
}
