package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type slotDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoBackend stores one document per slot, keyed by _id.
type MongoBackend struct {
	client     *mongo.Client
	collection *mongo.Collection
}

var _ Backend = (*MongoBackend)(nil)

// NewMongo connects to uri and pings the server.
func NewMongo(ctx context.Context, uri, database, collection string) (*MongoBackend, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoBackend{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

func (m *MongoBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var doc slotDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Value), nil
}

func (m *MongoBackend) Set(ctx context.Context, key string, value []byte) error {
	doc := slotDocument{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (m *MongoBackend) Delete(ctx context.Context, key string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

func (m *MongoBackend) Close() error {
	return m.client.Disconnect(context.Background())
}
