package store

import (
	"context"
	"errors"

	"github.com/noteblog-dev/noteblog/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPostStore struct {
	collection *mongo.Collection
}

func NewMongoPostStore(db *mongo.Database) *MongoPostStore {
	return &MongoPostStore{collection: db.Collection("posts")}
}

func (s *MongoPostStore) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post

	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&post)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &post, nil
}

func (s *MongoPostStore) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Post, error) {
	cursor, err := s.collection.Find(ctx, filter, opts...)

	if err != nil {
		return nil, err
	}

	var posts []models.Post

	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (s *MongoPostStore) FindByIDs(ctx context.Context, ids []string) ([]models.Post, error) {
	return s.find(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (s *MongoPostStore) FindByAuthor(ctx context.Context, username string) ([]models.Post, error) {
	return s.find(ctx, bson.M{"authorUsername": username},
		options.Find().SetSort(bson.M{"createdAt": -1}))
}

func (s *MongoPostStore) All(ctx context.Context, category models.Category) ([]models.Post, error) {
	filter := bson.M{}

	if category != "" {
		filter["category"] = category
	}

	return s.find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
}

func (s *MongoPostStore) TopLiked(ctx context.Context, limit int) ([]models.Post, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{
			"likeCount": bson.M{"$size": bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "likeCount", Value: -1}, {Key: "createdAt", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)

	if err != nil {
		return nil, err
	}

	var posts []models.Post

	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (s *MongoPostStore) Related(ctx context.Context, category models.Category, excludeID string, limit int) ([]models.Post, error) {
	return s.find(ctx, bson.M{
		"category": category,
		"id":       bson.M{"$ne": excludeID},
	}, options.Find().SetLimit(int64(limit)))
}

func (s *MongoPostStore) Search(ctx context.Context, query string) ([]models.Post, error) {
	regex := primitive.Regex{Pattern: query, Options: "i"}

	return s.find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"title": regex},
			bson.M{"content": regex},
		},
	})
}

func (s *MongoPostStore) Insert(ctx context.Context, post *models.Post) error {
	_, err := s.collection.InsertOne(ctx, post)

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}

	return err
}

func (s *MongoPostStore) Save(ctx context.Context, post *models.Post) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"id": post.ID}, post)

	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *MongoPostStore) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"id": id})

	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *MongoPostStore) updateOne(ctx context.Context, id string, update bson.M) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"id": id}, update)

	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *MongoPostStore) IncrementViews(ctx context.Context, id string) error {
	return s.updateOne(ctx, id, bson.M{"$inc": bson.M{"views": 1}})
}

func (s *MongoPostStore) AddLike(ctx context.Context, id, userID string) error {
	return s.updateOne(ctx, id, bson.M{"$addToSet": bson.M{"likes": userID}})
}

func (s *MongoPostStore) RemoveLike(ctx context.Context, id, userID string) error {
	return s.updateOne(ctx, id, bson.M{"$pull": bson.M{"likes": userID}})
}

func (s *MongoPostStore) AppendComment(ctx context.Context, id string, comment models.Comment) error {
	return s.updateOne(ctx, id, bson.M{"$push": bson.M{"comments": comment}})
}
