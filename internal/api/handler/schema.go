package handler

import "time"

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// tokenResponse is the envelope returned by both register and login.
type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        userSummary `json:"user"`
}

type userSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// --- Users ---

type updateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Skills   *string `json:"skills,omitempty"`
	Location *string `json:"location,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// --- Jobs ---

type createJobRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description string     `json:"description" validate:"required"`
	Budget      int64      `json:"budget"      validate:"required,gt=0"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// --- Applications ---

type applyRequest struct {
	JobID            int64      `json:"job_id"            validate:"required"`
	ProposalText     string     `json:"proposal_text,omitempty"`
	BidAmount        float64    `json:"bid_amount,omitempty"`
	ProposedDeadline *time.Time `json:"proposed_deadline,omitempty"`
}

// --- Gigs ---

type createGigRequest struct {
	Title        string  `json:"title"       validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Category     string  `json:"category"    validate:"required"`
	Price        float64 `json:"price"       validate:"required,gt=0"`
	DeliveryDays int     `json:"delivery_days,omitempty"`
}

type updateGigRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	DeliveryDays *int     `json:"delivery_days,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

// --- Orders ---

type placeOrderRequest struct {
	GigID int64 `json:"gig_id" validate:"required"`
}

// --- Payments ---

type initiatePaymentRequest struct {
	JobID      int64   `json:"job_id"      validate:"required"`
	ReceiverID int64   `json:"receiver_id" validate:"required"`
	Amount     float64 `json:"amount"      validate:"required,gt=0"`
}

// --- Reviews ---

type createReviewRequest struct {
	JobID      int64  `json:"job_id"      validate:"required"`
	RevieweeID int64  `json:"reviewee_id" validate:"required"`
	Rating     int    `json:"rating"      validate:"required,min=1,max=5"`
	Text       string `json:"review_text,omitempty"`
}

// --- Conversations & Messages ---

type createConversationRequest struct {
	JobID        int64 `json:"job_id,omitempty"`
	ClientID     int64 `json:"client_id"     validate:"required"`
	FreelancerID int64 `json:"freelancer_id" validate:"required"`
}

type sendMessageRequest struct {
	ConversationID int64  `json:"conversation_id" validate:"required"`
	ReceiverID     int64  `json:"receiver_id"     validate:"required"`
	Content        string `json:"content"         validate:"required"`
}

// --- Notifications ---

type countResponse struct {
	Count int64 `json:"count"`
}

// --- Scam sidecar ---

type scamCheckRequest struct {
	Message string `json:"message" validate:"required"`
}
