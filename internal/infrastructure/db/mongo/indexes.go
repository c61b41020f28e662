package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func uniqueIndex() *options.IndexOptions {
	return options.Index().SetUnique(true)
}

// EnsureIndexes creates every index the repositories rely on. Called once at
// startup, before the HTTP server accepts traffic.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for name, ensure := range map[string]func(context.Context) error{
		"users":        NewUserRepository(db).EnsureIndexes,
		"jobs":         NewJobRepository(db).EnsureIndexes,
		"applications": NewApplicationRepository(db).EnsureIndexes,
		"gigs":         NewGigRepository(db).EnsureIndexes,
		"messages":     NewMessageRepository(db).EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}
	return nil
}
