package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// MessageService implements message persistence. It is fed by the REST
// handler and by the chat dispatcher workers.
type MessageService struct {
	repo ports.MessageRepository
	log  zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, log zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, log: log}
}

func (s *MessageService) Create(ctx context.Context, input ports.CreateMessageInput) (*domain.Message, error) {
	content, err := domain.ValidateMessageContent(input.Content)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ConversationID: input.ConversationID,
		SenderID:       input.SenderID,
		ReceiverID:     input.ReceiverID,
		Content:        content,
		SentAt:         time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		s.log.Error().Err(err).Int64("conversation_id", input.ConversationID).Msg("failed to persist message")
		return nil, err
	}
	return created, nil
}

func (s *MessageService) Get(ctx context.Context, id int64) (*domain.Message, error) {
	return s.repo.FindByID(ctx, id)
}
