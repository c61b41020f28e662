package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// MessageRepository defines the persistence interface for chat messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id int64) (*domain.Message, error)
	ListByConversation(ctx context.Context, conversationID int64) ([]domain.Message, error)
}

// CreateMessageInput carries a message to persist. The chat dispatcher and
// the REST handler both feed this into the message service.
type CreateMessageInput struct {
	ConversationID int64
	SenderID       int64
	ReceiverID     int64
	Content        string
}

// MessageService defines use-case operations for chat messages.
type MessageService interface {
	Create(ctx context.Context, input CreateMessageInput) (*domain.Message, error)
	Get(ctx context.Context, id int64) (*domain.Message, error)
}
