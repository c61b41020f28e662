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

const applicationsCollection = "applications"

type ApplicationRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{db: db, coll: db.Collection(applicationsCollection)}
}

type applicationDoc struct {
	ID               int64                    `bson:"_id"`
	JobID            int64                    `bson:"job_id"`
	FreelancerID     int64                    `bson:"freelancer_id"`
	ProposalText     string                   `bson:"proposal_text,omitempty"`
	BidAmount        float64                  `bson:"bid_amount,omitempty"`
	ProposedDeadline *time.Time               `bson:"proposed_deadline,omitempty"`
	Status           domain.ApplicationStatus `bson:"status"`
	Seen             bool                     `bson:"seen"`
	CreatedAt        time.Time                `bson:"created_at"`
}

func toApplicationDoc(a *domain.Application) applicationDoc {
	return applicationDoc{
		ID:               a.ID,
		JobID:            a.JobID,
		FreelancerID:     a.FreelancerID,
		ProposalText:     a.ProposalText,
		BidAmount:        a.BidAmount,
		ProposedDeadline: a.ProposedDeadline,
		Status:           a.Status,
		Seen:             a.Seen,
		CreatedAt:        a.CreatedAt,
	}
}

func (d applicationDoc) toDomain() *domain.Application {
	return &domain.Application{
		ID:               d.ID,
		JobID:            d.JobID,
		FreelancerID:     d.FreelancerID,
		ProposalText:     d.ProposalText,
		BidAmount:        d.BidAmount,
		ProposedDeadline: d.ProposedDeadline,
		Status:           d.Status,
		Seen:             d.Seen,
		CreatedAt:        d.CreatedAt.UTC(),
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	id, err := nextID(ctx, r.db, applicationsCollection)
	if err != nil {
		return nil, err
	}

	doc := toApplicationDoc(app)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id int64) (*domain.Application, error) {
	var doc applicationDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApplicationRepository) FindByJobAndFreelancer(ctx context.Context, jobID, freelancerID int64) (*domain.Application, error) {
	var doc applicationDoc
	err := r.coll.FindOne(ctx, bson.M{"job_id": jobID, "freelancer_id": freelancerID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application by job and freelancer: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	return r.list(ctx, bson.M{"job_id": jobID})
}

func (r *ApplicationRepository) ListByFreelancer(ctx context.Context, freelancerID int64) ([]domain.Application, error) {
	return r.list(ctx, bson.M{"freelancer_id": freelancerID})
}

func (r *ApplicationRepository) list(ctx context.Context, filter bson.M) ([]domain.Application, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	var apps []domain.Application
	for cur.Next(ctx) {
		var doc applicationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		apps = append(apps, *doc.toDomain())
	}
	return apps, cur.Err()
}

// Accept runs the whole acceptance in one transaction: the application
// becomes accepted, the job gets the freelancer and moves to in_progress,
// and every sibling pending application is rejected. A concurrent accept on
// the same job aborts rather than leaving two accepted bids.
func (r *ApplicationRepository) Accept(ctx context.Context, app *domain.Application) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	jobs := r.db.Collection(jobsCollection)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.coll.UpdateOne(sc,
			bson.M{"_id": app.ID, "status": domain.ApplicationPending},
			bson.M{"$set": bson.M{"status": domain.ApplicationAccepted}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrInvalidApplicationStatus
		}

		if _, err := jobs.UpdateOne(sc,
			bson.M{"_id": app.JobID},
			bson.M{"$set": bson.M{
				"freelancer_id": app.FreelancerID,
				"status":        domain.JobInProgress,
			}},
		); err != nil {
			return nil, err
		}

		_, err = r.coll.UpdateMany(sc,
			bson.M{
				"job_id": app.JobID,
				"_id":    bson.M{"$ne": app.ID},
				"status": domain.ApplicationPending,
			},
			bson.M{"$set": bson.M{"status": domain.ApplicationRejected}},
		)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("accept application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) Reject(ctx context.Context, id int64) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": domain.ApplicationRejected}},
	)
	if err != nil {
		return fmt.Errorf("reject application: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// CountPendingForClient counts pending applications across the client's jobs.
func (r *ApplicationRepository) CountPendingForClient(ctx context.Context, clientID int64) (int64, error) {
	jobs := r.db.Collection(jobsCollection)
	cur, err := jobs.Find(ctx, bson.M{"client_id": clientID}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return 0, fmt.Errorf("find client jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobIDs []int64
	for cur.Next(ctx) {
		var doc struct {
			ID int64 `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return 0, err
		}
		jobIDs = append(jobIDs, doc.ID)
	}
	if err := cur.Err(); err != nil {
		return 0, err
	}
	if len(jobIDs) == 0 {
		return 0, nil
	}

	return r.coll.CountDocuments(ctx, bson.M{
		"job_id": bson.M{"$in": jobIDs},
		"status": domain.ApplicationPending,
	})
}

// CountUnseenDecided counts the freelancer's applications that were decided
// but not yet acknowledged.
func (r *ApplicationRepository) CountUnseenDecided(ctx context.Context, freelancerID int64) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{
		"freelancer_id": freelancerID,
		"status":        bson.M{"$in": []domain.ApplicationStatus{domain.ApplicationAccepted, domain.ApplicationRejected}},
		"seen":          false,
	})
}

// EnsureIndexes creates the unique one-bid-per-job index.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "freelancer_id", Value: 1}},
			Options: uniqueIndex(),
		},
		{Keys: bson.D{{Key: "freelancer_id", Value: 1}, {Key: "status", Value: 1}}},
	})
	return err
}
