package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

const ordersCollection = "orders"

type OrderRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{db: db, coll: db.Collection(ordersCollection)}
}

type orderDoc struct {
	ID         int64              `bson:"_id"`
	GigID      int64              `bson:"gig_id"`
	BuyerID    int64              `bson:"buyer_id"`
	Status     domain.OrderStatus `bson:"status"`
	TotalPrice float64            `bson:"total_price"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (d orderDoc) toDomain() *domain.Order {
	return &domain.Order{
		ID:         d.ID,
		GigID:      d.GigID,
		BuyerID:    d.BuyerID,
		Status:     d.Status,
		TotalPrice: d.TotalPrice,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	id, err := nextID(ctx, r.db, ordersCollection)
	if err != nil {
		return nil, err
	}

	doc := orderDoc{
		ID:         id,
		GigID:      order.GigID,
		BuyerID:    order.BuyerID,
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OrderRepository) ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Order, error) {
	cur, err := r.coll.Find(ctx, bson.M{"buyer_id": buyerID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []domain.Order
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, *doc.toDomain())
	}
	return orders, cur.Err()
}
