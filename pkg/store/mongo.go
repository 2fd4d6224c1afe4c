package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/errors"
)

// Mongo defaults.
const (
	DefaultDatabase   = "chartkit"
	DefaultCollection = "charts"
)

// MongoOptions configure a MongoStore.
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
	// Timeout bounds connecting and each operation.
	Timeout time.Duration
}

// MongoStore keeps charts in a MongoDB collection, one document per chart.
type MongoStore struct {
	client  *mongo.Client
	coll    *mongo.Collection
	timeout time.Duration
}

// mongoDocument is the stored form of a chart.
type mongoDocument struct {
	ID        string    `bson:"_id"`
	Title     string    `bson:"title,omitempty"`
	Hash      string    `bson:"hash"`
	Chart     string    `bson:"chart,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d mongoDocument) record() Record {
	return Record{ID: d.ID, Title: d.Title, Hash: d.Hash, CreatedAt: d.CreatedAt}
}

// NewMongoStore connects to MongoDB, verifies the connection and ensures the
// created_at index exists.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.Database == "" {
		opts.Database = DefaultDatabase
	}
	if opts.Collection == "" {
		opts.Collection = DefaultCollection
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(opts.URI).
		SetConnectTimeout(opts.Timeout).
		SetServerSelectionTimeout(opts.Timeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	coll := client.Database(opts.Database).Collection(opts.Collection)
	_, err = coll.Indexes().CreateOne(pingCtx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo index: %w", err)
	}

	return &MongoStore{client: client, coll: coll, timeout: opts.Timeout}, nil
}

func (s *MongoStore) Put(ctx context.Context, c *chartfile.Chart) (*Record, error) {
	rec, data, err := newRecord(c, time.Now())
	if err != nil {
		return nil, err
	}
	// BSON dates have millisecond precision.
	rec.CreatedAt = rec.CreatedAt.Truncate(time.Millisecond)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	_, err = s.coll.InsertOne(ctx, mongoDocument{
		ID:        rec.ID,
		Title:     rec.Title,
		Hash:      rec.Hash,
		Chart:     string(data),
		CreatedAt: rec.CreatedAt,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "insert chart")
	}
	return rec, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	if err := errors.ValidateChartID(id); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var doc mongoDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "find chart")
	}

	c, err := decodeChart([]byte(doc.Chart))
	if err != nil {
		return nil, err
	}
	rec := doc.record()
	rec.Chart = c
	return &rec, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateChartID(id); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "delete chart")
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context, limit int) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(listLimit(limit))).
		SetProjection(bson.M{"chart": 0}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list charts")
	}
	var docs []mongoDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list charts")
	}

	out := make([]Record, len(docs))
	for i, d := range docs {
		out[i] = d.record()
	}
	return out, nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
