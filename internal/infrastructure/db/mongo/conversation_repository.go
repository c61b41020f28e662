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

const conversationsCollection = "conversations"

type ConversationRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewConversationRepository(db *mongo.Database) *ConversationRepository {
	return &ConversationRepository{db: db, coll: db.Collection(conversationsCollection)}
}

type conversationDoc struct {
	ID           int64     `bson:"_id"`
	JobID        int64     `bson:"job_id,omitempty"`
	ClientID     int64     `bson:"client_id"`
	FreelancerID int64     `bson:"freelancer_id"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d conversationDoc) toDomain() *domain.Conversation {
	return &domain.Conversation{
		ID:           d.ID,
		JobID:        d.JobID,
		ClientID:     d.ClientID,
		FreelancerID: d.FreelancerID,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

func (r *ConversationRepository) Create(ctx context.Context, conv *domain.Conversation) (*domain.Conversation, error) {
	id, err := nextID(ctx, r.db, conversationsCollection)
	if err != nil {
		return nil, err
	}

	doc := conversationDoc{
		ID:           id,
		JobID:        conv.JobID,
		ClientID:     conv.ClientID,
		FreelancerID: conv.FreelancerID,
		CreatedAt:    conv.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert conversation: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ConversationRepository) FindByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	var doc conversationDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ConversationRepository) ListByParticipant(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	filter := bson.M{"$or": []bson.M{
		{"client_id": userID},
		{"freelancer_id": userID},
	}}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer cur.Close(ctx)

	var convs []domain.Conversation
	for cur.Next(ctx) {
		var doc conversationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode conversation: %w", err)
		}
		convs = append(convs, *doc.toDomain())
	}
	return convs, cur.Err()
}
