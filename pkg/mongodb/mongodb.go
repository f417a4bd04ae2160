package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Config struct {
	URI        string `envconfig:"MONGO_URI"`
	Database   string `envconfig:"MONGO_DB_NAME"`
	Collection string `envconfig:"MONGO_COLLECTION_NAME"`
}

const connectTimeout = 10 * time.Second

// NewMongoDB connects a single client and verifies the connection with a
// ping before anything starts serving.
func NewMongoDB(ctx context.Context, cfg *Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "mongo ping")
	}
	return client.Database(cfg.Database), nil
}
