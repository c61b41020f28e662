package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// ConversationRepository defines the persistence interface for conversations.
type ConversationRepository interface {
	Create(ctx context.Context, conv *domain.Conversation) (*domain.Conversation, error)
	FindByID(ctx context.Context, id int64) (*domain.Conversation, error)
	ListByParticipant(ctx context.Context, userID int64) ([]domain.Conversation, error)
}

// CreateConversationInput carries the data for a new conversation.
type CreateConversationInput struct {
	JobID        int64
	ClientID     int64
	FreelancerID int64
	ActorID      int64
}

// ConversationService defines use-case operations for conversations.
type ConversationService interface {
	List(ctx context.Context, actorID int64) ([]domain.Conversation, error)
	Create(ctx context.Context, input CreateConversationInput) (*domain.Conversation, error)
	Messages(ctx context.Context, conversationID int64) ([]domain.Message, error)
}
