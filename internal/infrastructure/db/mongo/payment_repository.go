package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

const paymentsCollection = "payments"

type PaymentRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{db: db, coll: db.Collection(paymentsCollection)}
}

type paymentDoc struct {
	ID            int64                `bson:"_id"`
	JobID         int64                `bson:"job_id"`
	SenderID      int64                `bson:"sender_id"`
	ReceiverID    int64                `bson:"receiver_id"`
	Amount        float64              `bson:"amount"`
	PaymentMethod string               `bson:"payment_method"`
	Status        domain.PaymentStatus `bson:"status"`
	CreatedAt     time.Time            `bson:"created_at"`
}

func toPaymentDoc(p *domain.Payment) paymentDoc {
	return paymentDoc{
		ID:            p.ID,
		JobID:         p.JobID,
		SenderID:      p.SenderID,
		ReceiverID:    p.ReceiverID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
}

func (d paymentDoc) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:            d.ID,
		JobID:         d.JobID,
		SenderID:      d.SenderID,
		ReceiverID:    d.ReceiverID,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	id, err := nextID(ctx, r.db, paymentsCollection)
	if err != nil {
		return nil, err
	}

	doc := toPaymentDoc(payment)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var doc paymentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	doc := toPaymentDoc(payment)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": payment.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPaymentNotFound
	}
	return doc.toDomain(), nil
}
