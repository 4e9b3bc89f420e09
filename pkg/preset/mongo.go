package preset

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/slidertrack/pkg/errors"
)

// DefaultCollection is the collection MongoStore uses when none is given.
const DefaultCollection = "presets"

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MongoStore keeps presets in a MongoDB collection with a unique index on
// name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects, pings and ensures the name index.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "slidertrack"
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &MongoStore{client: client, coll: client.Database(cfg.Database).Collection(cfg.Collection)}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create preset index: %w", err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, name string) (*Preset, error) {
	if err := errors.ValidatePresetName(name); err != nil {
		return nil, err
	}
	var p Preset
	if err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&p); err != nil {
		return nil, findError(name, err)
	}
	return &p, nil
}

// findError maps a missing document to PRESET_NOT_FOUND.
func findError(name string, err error) error {
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return notFound(name)
	}
	return fmt.Errorf("find preset: %w", err)
}

// Put upserts by name. The id and creation time are only written on insert.
func (s *MongoStore) Put(ctx context.Context, p *Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	update := bson.M{
		"$set":         bson.M{"settings": p.Settings},
		"$setOnInsert": bson.M{"id": p.ID, "name": p.Name, "created_at": p.CreatedAt},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored Preset
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"name": p.Name}, update, opts).Decode(&stored); err != nil {
		return fmt.Errorf("upsert preset: %w", err)
	}
	p.ID = stored.ID
	p.CreatedAt = stored.CreatedAt
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]*Preset, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	var presets []*Preset
	if err := cur.All(ctx, &presets); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	return presets, nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidatePresetName(name); err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	if res.DeletedCount == 0 {
		return notFound(name)
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
