package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DataStore is the subset of collection operations the repository needs.
type DataStore interface {
	// FindAll runs a query and decodes every matching document into results, which must be a
	// pointer to a slice.
	FindAll(ctx context.Context, filter any, results any, opts ...*options.FindOptions) error
	UpdateOne(ctx context.Context, filter any, update any, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

// CollectionProvider hands out collections by name.
type CollectionProvider interface {
	Collection(name string) DataStore
}

// Collection adapts *mongo.Collection to DataStore.
type Collection struct {
	*mongo.Collection
}

// FindAll performs a Find and drains the cursor.
func (c *Collection) FindAll(ctx context.Context, filter any, results any, opts ...*options.FindOptions) error {
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return fmt.Errorf("failed to perform Find on %s: %w", c.Name(), err)
	}
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("failed to decode documents from %s: %w", c.Name(), err)
	}
	return nil
}

// UpdateOne updates a single document.
func (c *Collection) UpdateOne(ctx context.Context, filter any, update any, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	result, err := c.Collection.UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to perform UpdateOne on %s: %w", c.Name(), err)
	}
	return result, nil
}

// Provider adapts a database handle to CollectionProvider.
type Provider struct {
	db *mongo.Database
}

// NewProvider returns a provider over the named database.
func NewProvider(client *mongo.Client, database string) *Provider {
	return &Provider{db: client.Database(database)}
}

// Collection returns a DataStore for the given collection name.
func (p *Provider) Collection(name string) DataStore {
	return &Collection{p.db.Collection(name)}
}

// Connect establishes and verifies a connection to MongoDB.
func Connect(ctx context.Context, uri string, logger *slog.Logger) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URL cannot be empty")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	logger.Info("Successfully connected to MongoDB.")
	return client, nil
}
