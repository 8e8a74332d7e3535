package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Default MongoDB database and collection names.
const (
	DefaultMongoDatabase   = "pokequiz"
	DefaultMongoCollection = "responses"
)

// MongoCache stores one document per entry in a MongoDB collection.
type MongoCache struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type mongoEntry struct {
	ID        string    `bson:"_id"`
	URL       string    `bson:"url"`
	Payload   []byte    `bson:"payload"`
	CreatedAt time.Time `bson:"created_at"`
}

// NewMongoCache connects to uri and uses database/collection, falling back to
// [DefaultMongoDatabase] and [DefaultMongoCollection] when empty.
func NewMongoCache(ctx context.Context, uri, database, collection string) (*MongoCache, error) {
	if database == "" {
		database = DefaultMongoDatabase
	}
	if collection == "" {
		collection = DefaultMongoCollection
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoCache{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// Name returns "mongo".
func (c *MongoCache) Name() string { return "mongo" }

// Get retrieves a value from the cache.
func (c *MongoCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var e mongoEntry
	err := c.coll.FindOne(ctx, bson.M{"_id": HashKey(key)}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return e.Payload, true, nil
}

// Set upserts the entry for key.
func (c *MongoCache) Set(ctx context.Context, key string, data []byte) error {
	e := mongoEntry{ID: HashKey(key), URL: key, Payload: data, CreatedAt: time.Now().UTC()}
	_, err := c.coll.ReplaceOne(ctx, bson.M{"_id": e.ID}, e, options.Replace().SetUpsert(true))
	return err
}

// Delete removes a value from the cache.
func (c *MongoCache) Delete(ctx context.Context, key string) error {
	_, err := c.coll.DeleteOne(ctx, bson.M{"_id": HashKey(key)})
	return err
}

// Close disconnects the client.
func (c *MongoCache) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}

// Stats counts documents. Byte size is not tracked for this backend.
func (c *MongoCache) Stats(ctx context.Context) (Stats, error) {
	n, err := c.coll.CountDocuments(ctx, bson.M{})
	return Stats{Entries: int(n)}, err
}

// Clear deletes every document in the collection.
func (c *MongoCache) Clear(ctx context.Context) (int, error) {
	res, err := c.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return int(res.DeletedCount), nil
}

var (
	_ Cache   = (*MongoCache)(nil)
	_ Statser = (*MongoCache)(nil)
	_ Clearer = (*MongoCache)(nil)
)
