package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// ConversationService implements message threads between job parties.
type ConversationService struct {
	convs    ports.ConversationRepository
	messages ports.MessageRepository
	log      zerolog.Logger
}

func NewConversationService(convs ports.ConversationRepository, messages ports.MessageRepository, log zerolog.Logger) *ConversationService {
	return &ConversationService{convs: convs, messages: messages, log: log}
}

func (s *ConversationService) List(ctx context.Context, actorID int64) ([]domain.Conversation, error) {
	return s.convs.ListByParticipant(ctx, actorID)
}

// Create opens a thread. The actor must be one of the two named parties.
func (s *ConversationService) Create(ctx context.Context, input ports.CreateConversationInput) (*domain.Conversation, error) {
	conv := &domain.Conversation{
		JobID:        input.JobID,
		ClientID:     input.ClientID,
		FreelancerID: input.FreelancerID,
		CreatedAt:    time.Now().UTC(),
	}
	if !conv.IsParticipant(input.ActorID) {
		return nil, domain.ErrNotParticipant
	}

	created, err := s.convs.Create(ctx, conv)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("conversation_id", created.ID).Int64("job_id", created.JobID).Msg("conversation opened")
	return created, nil
}

func (s *ConversationService) Messages(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	return s.messages.ListByConversation(ctx, conversationID)
}
