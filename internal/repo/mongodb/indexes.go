package mongodb

import (
	"context"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the service relies on:
// one application id per product document, one account per email.
func EnsureIndexes(ctx context.Context, db *DB) error {
	specs := []struct {
		collection string
		keys       bson.D
		name       string
	}{
		{productCollection, bson.D{{Key: "id", Value: 1}}, "unique_id"},
		{userCollection, bson.D{{Key: "email", Value: 1}}, "unique_email"},
	}

	for _, spec := range specs {
		model := mongo.IndexModel{
			Keys:    spec.keys,
			Options: options.Index().SetUnique(true).SetName(spec.name),
		}
		if _, err := db.Database.Collection(spec.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("ensure index %s on %s: %w", spec.name, spec.collection, err)
		}
		log.Infow(ctx, "index ensured", "collection", spec.collection, "index", spec.name)
	}

	return nil
}
