package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

const messagesCollection = "messages"

type MessageRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{db: db, coll: db.Collection(messagesCollection)}
}

type messageDoc struct {
	ID             int64     `bson:"_id"`
	ConversationID int64     `bson:"conversation_id"`
	SenderID       int64     `bson:"sender_id"`
	ReceiverID     int64     `bson:"receiver_id"`
	Content        string    `bson:"content"`
	SentAt         time.Time `bson:"sent_at"`
}

func (d messageDoc) toDomain() *domain.Message {
	return &domain.Message{
		ID:             d.ID,
		ConversationID: d.ConversationID,
		SenderID:       d.SenderID,
		ReceiverID:     d.ReceiverID,
		Content:        d.Content,
		SentAt:         d.SentAt.UTC(),
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	id, err := nextID(ctx, r.db, messagesCollection)
	if err != nil {
		return nil, err
	}

	doc := messageDoc{
		ID:             id,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		ReceiverID:     msg.ReceiverID,
		Content:        msg.Content,
		SentAt:         msg.SentAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id int64) (*domain.Message, error) {
	var doc messageDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	return doc.toDomain(), nil
}

// ListByConversation returns a conversation's messages in send order.
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"conversation_id": conversationID},
		options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer cur.Close(ctx)

	var msgs []domain.Message
	for cur.Next(ctx) {
		var doc messageDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		msgs = append(msgs, *doc.toDomain())
	}
	return msgs, cur.Err()
}

func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "sent_at", Value: 1}},
	})
	return err
}
