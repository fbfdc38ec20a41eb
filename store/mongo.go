// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danielhkuo/awesome-answers/models"
)

const questionCollection = "questions"

// MongoDB server error codes
const (
	codeNamespaceExists          = 48
	codeDocumentValidationFailed = 121
)

// MongoStore keeps questions as documents in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	coll   *mongo.Collection
}

var _ QuestionStore = (*MongoStore)(nil)

type questionDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

// ConnectMongo dials uri and returns a store bound to the named database.
func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	return NewMongoStore(client, database), nil
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	mdb := client.Database(database)
	return &MongoStore{
		client: client,
		db:     mdb,
		coll:   mdb.Collection(questionCollection),
	}
}

// EnsureSchema creates the collection with a $jsonSchema validator that
// rejects documents without a non-blank title.
func (s *MongoStore) EnsureSchema(ctx context.Context) error {
	validator := bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title"},
			"properties": bson.M{
				"title": bson.M{
					"bsonType": "string",
					"pattern":  `\S`,
				},
				"body": bson.M{
					"bsonType": "string",
				},
			},
		},
	}

	opts := options.CreateCollection().SetValidator(validator)
	err := s.db.CreateCollection(ctx, questionCollection, opts)

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == codeNamespaceExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, q models.Question) (models.Question, error) {
	doc := questionDocument{
		ID:        primitive.NewObjectID(),
		Title:     q.Title,
		Body:      q.Body,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if isDocumentValidationFailure(err) {
			return models.Question{}, titleRequired(err)
		}
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}

	return doc.toModel(), nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (models.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Question{}, ErrNotFound
	}

	var doc questionDocument
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}

	return doc.toModel(), nil
}

func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

func (d questionDocument) toModel() models.Question {
	return models.Question{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Body:      d.Body,
		CreatedAt: d.CreatedAt,
	}
}

func isDocumentValidationFailure(err error) bool {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return false
	}
	for _, e := range we.WriteErrors {
		if e.Code == codeDocumentValidationFailed {
			return true
		}
	}
	return false
}
