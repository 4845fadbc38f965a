package store

import (
	"context"

	"github.com/noteblog-dev/noteblog/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoMessageStore struct {
	collection *mongo.Collection
}

func NewMongoMessageStore(db *mongo.Database) *MongoMessageStore {
	return &MongoMessageStore{collection: db.Collection("messages")}
}

func (s *MongoMessageStore) Insert(ctx context.Context, message *models.Message) error {
	_, err := s.collection.InsertOne(ctx, message)
	return err
}

func (s *MongoMessageStore) All(ctx context.Context) ([]models.Message, error) {
	cursor, err := s.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}))

	if err != nil {
		return nil, err
	}

	var messages []models.Message

	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}
