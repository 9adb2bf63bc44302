package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	productCollection = "produits"
	userCollection    = "users"
)

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}
