// internal/common/database/mongo.go
package database

import (
	"context"
	"fmt"

	"github.com/agarwalaashrut/JobAppREST/internal/common/config"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoClient wraps the MongoDB connection. The client is created once at
// startup and shared for the process lifetime; the driver handles pooling.
type MongoClient struct {
	Client *mongo.Client
	cfg    config.MongoConfig
}

// NewMongo creates a new MongoDB client.
func NewMongo(cfg config.MongoConfig) (*MongoClient, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	return &MongoClient{Client: client, cfg: cfg}, nil
}

// Ping tests the database connection.
func (c *MongoClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (c *MongoClient) Close(ctx context.Context) error {
	if c.Client != nil {
		return c.Client.Disconnect(ctx)
	}
	return nil
}

// Applications returns the configured application collection.
func (c *MongoClient) Applications() *mongo.Collection {
	return c.Client.Database(c.cfg.Database).Collection(c.cfg.Collection)
}
