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

const jobsCollection = "jobs"

type JobRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{db: db, coll: db.Collection(jobsCollection)}
}

type jobDoc struct {
	ID           int64            `bson:"_id"`
	Title        string           `bson:"title"`
	Description  string           `bson:"description"`
	Budget       int64            `bson:"budget"`
	Deadline     *time.Time       `bson:"deadline,omitempty"`
	ClientID     int64            `bson:"client_id"`
	FreelancerID int64            `bson:"freelancer_id,omitempty"`
	Amount       int64            `bson:"amount,omitempty"`
	Status       domain.JobStatus `bson:"status"`
	PostedAt     time.Time        `bson:"posted_at"`
}

func toJobDoc(j *domain.Job) jobDoc {
	return jobDoc{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Budget:       j.Budget,
		Deadline:     j.Deadline,
		ClientID:     j.ClientID,
		FreelancerID: j.FreelancerID,
		Amount:       j.Amount,
		Status:       j.Status,
		PostedAt:     j.PostedAt,
	}
}

func (d jobDoc) toDomain() *domain.Job {
	return &domain.Job{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Budget:       d.Budget,
		Deadline:     d.Deadline,
		ClientID:     d.ClientID,
		FreelancerID: d.FreelancerID,
		Amount:       d.Amount,
		Status:       d.Status,
		PostedAt:     d.PostedAt.UTC(),
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	id, err := nextID(ctx, r.db, jobsCollection)
	if err != nil {
		return nil, err
	}

	doc := toJobDoc(job)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *JobRepository) FindByID(ctx context.Context, id int64) (*domain.Job, error) {
	var doc jobDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns all jobs, newest first.
func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []domain.Job
	for cur.Next(ctx) {
		var doc jobDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, *doc.toDomain())
	}
	return jobs, cur.Err()
}

func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	return err
}
