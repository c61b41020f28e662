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

const gigsCollection = "gigs"

type GigRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewGigRepository(db *mongo.Database) *GigRepository {
	return &GigRepository{db: db, coll: db.Collection(gigsCollection)}
}

type gigDoc struct {
	ID           int64     `bson:"_id"`
	Title        string    `bson:"title"`
	Description  string    `bson:"description"`
	Category     string    `bson:"category"`
	Price        float64   `bson:"price"`
	DeliveryDays int       `bson:"delivery_days"`
	IsActive     bool      `bson:"is_active"`
	FreelancerID int64     `bson:"freelancer_id"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toGigDoc(g *domain.Gig) gigDoc {
	return gigDoc{
		ID:           g.ID,
		Title:        g.Title,
		Description:  g.Description,
		Category:     g.Category,
		Price:        g.Price,
		DeliveryDays: g.DeliveryDays,
		IsActive:     g.IsActive,
		FreelancerID: g.FreelancerID,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func (d gigDoc) toDomain() *domain.Gig {
	return &domain.Gig{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Category:     d.Category,
		Price:        d.Price,
		DeliveryDays: d.DeliveryDays,
		IsActive:     d.IsActive,
		FreelancerID: d.FreelancerID,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func (r *GigRepository) Create(ctx context.Context, gig *domain.Gig) (*domain.Gig, error) {
	id, err := nextID(ctx, r.db, gigsCollection)
	if err != nil {
		return nil, err
	}

	doc := toGigDoc(gig)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert gig: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *GigRepository) FindByID(ctx context.Context, id int64) (*domain.Gig, error) {
	var doc gigDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGigNotFound
		}
		return nil, fmt.Errorf("find gig: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns active gigs, optionally filtered by category, newest first.
func (r *GigRepository) List(ctx context.Context, category string) ([]domain.Gig, error) {
	filter := bson.M{"is_active": true}
	if category != "" {
		filter["category"] = category
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list gigs: %w", err)
	}
	defer cur.Close(ctx)

	var gigs []domain.Gig
	for cur.Next(ctx) {
		var doc gigDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode gig: %w", err)
		}
		gigs = append(gigs, *doc.toDomain())
	}
	return gigs, cur.Err()
}

func (r *GigRepository) Update(ctx context.Context, gig *domain.Gig) (*domain.Gig, error) {
	doc := toGigDoc(gig)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": gig.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update gig: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrGigNotFound
	}
	return doc.toDomain(), nil
}

func (r *GigRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete gig: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGigNotFound
	}
	return nil
}

func (r *GigRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "freelancer_id", Value: 1}}},
	})
	return err
}
