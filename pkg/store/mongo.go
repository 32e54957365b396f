package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Azmathzahask/SOLIS/pkg/errors"
)

// mongoCollection is the collection holding saved layouts.
const mongoCollection = "layouts"

// MongoStore is a MongoDB-backed layout store for multi-instance server
// deployments.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	URI      string
	Database string
}

// NewMongoStore connects to MongoDB and verifies the connection with a
// ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connect to mongodb")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "ping mongodb")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(mongoCollection),
	}, nil
}

// List returns all saved layouts, newest first.
func (s *MongoStore) List(ctx context.Context) ([]SavedLayout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "list layouts")
	}
	defer cursor.Close(ctx)

	var layouts []SavedLayout
	if err := cursor.All(ctx, &layouts); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "decode layouts")
	}
	return layouts, nil
}

// Get retrieves a saved layout by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (SavedLayout, error) {
	var l SavedLayout
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if err == mongo.ErrNoDocuments {
		return SavedLayout{}, notFound(id)
	}
	if err != nil {
		return SavedLayout{}, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "read layout %s", id)
	}
	return l, nil
}

// Put stores a saved layout, replacing any entry with the same ID.
func (s *MongoStore) Put(ctx context.Context, layout SavedLayout) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": layout.ID}, layout, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "write layout %s", layout.ID)
	}
	return nil
}

// Delete removes a saved layout.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "delete layout %s", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ LayoutStore = (*MongoStore)(nil)
