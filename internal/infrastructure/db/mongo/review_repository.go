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

const reviewsCollection = "reviews"

type ReviewRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{db: db, coll: db.Collection(reviewsCollection)}
}

type reviewDoc struct {
	ID         int64     `bson:"_id"`
	JobID      int64     `bson:"job_id"`
	ReviewerID int64     `bson:"reviewer_id"`
	RevieweeID int64     `bson:"reviewee_id"`
	Rating     int       `bson:"rating"`
	ReviewText string    `bson:"review_text"`
	Feedback   string    `bson:"feedback,omitempty"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (d reviewDoc) toDomain() *domain.Review {
	return &domain.Review{
		ID:         d.ID,
		JobID:      d.JobID,
		ReviewerID: d.ReviewerID,
		RevieweeID: d.RevieweeID,
		Rating:     d.Rating,
		ReviewText: d.ReviewText,
		Feedback:   d.Feedback,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	id, err := nextID(ctx, r.db, reviewsCollection)
	if err != nil {
		return nil, err
	}

	doc := reviewDoc{
		ID:         id,
		JobID:      review.JobID,
		ReviewerID: review.ReviewerID,
		RevieweeID: review.RevieweeID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		Feedback:   review.Feedback,
		CreatedAt:  review.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ReviewRepository) FindByJobAndReviewer(ctx context.Context, jobID, reviewerID int64) (*domain.Review, error) {
	var doc reviewDoc
	err := r.coll.FindOne(ctx, bson.M{"job_id": jobID, "reviewer_id": reviewerID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ReviewRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.Review, error) {
	return r.list(ctx, bson.M{"job_id": jobID})
}

func (r *ReviewRepository) ListByReviewee(ctx context.Context, revieweeID int64) ([]domain.Review, error) {
	return r.list(ctx, bson.M{"reviewee_id": revieweeID})
}

func (r *ReviewRepository) list(ctx context.Context, filter bson.M) ([]domain.Review, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	var reviews []domain.Review
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		reviews = append(reviews, *doc.toDomain())
	}
	return reviews, cur.Err()
}
