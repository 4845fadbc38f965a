package store

import (
	"context"
	"errors"

	"github.com/noteblog-dev/noteblog/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{collection: db.Collection("users")}
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User

	err := s.collection.FindOne(ctx, filter).Decode(&user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"id": id})
}

func (s *MongoUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) Search(ctx context.Context, query string) ([]models.User, error) {
	regex := primitive.Regex{Pattern: query, Options: "i"}

	cursor, err := s.collection.Find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"fullName": regex},
			bson.M{"skills": regex},
		},
	})

	if err != nil {
		return nil, err
	}

	var users []models.User

	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *MongoUserStore) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})

	if err != nil {
		return nil, err
	}

	var users []models.User

	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) error {
	_, err := s.collection.InsertOne(ctx, user)

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}

	return err
}

func (s *MongoUserStore) Save(ctx context.Context, user *models.User) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"id": user.ID}, user)

	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *MongoUserStore) updateOne(ctx context.Context, userID string, update bson.M) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"id": userID}, update)

	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *MongoUserStore) AddFollower(ctx context.Context, userID, followerID string) error {
	return s.updateOne(ctx, userID, bson.M{"$addToSet": bson.M{"followers": followerID}})
}

func (s *MongoUserStore) RemoveFollower(ctx context.Context, userID, followerID string) error {
	return s.updateOne(ctx, userID, bson.M{"$pull": bson.M{"followers": followerID}})
}

func (s *MongoUserStore) AddFollowing(ctx context.Context, userID, followingID string) error {
	return s.updateOne(ctx, userID, bson.M{"$addToSet": bson.M{"following": followingID}})
}

func (s *MongoUserStore) RemoveFollowing(ctx context.Context, userID, followingID string) error {
	return s.updateOne(ctx, userID, bson.M{"$pull": bson.M{"following": followingID}})
}

func (s *MongoUserStore) AddSavedPost(ctx context.Context, userID, postID string) error {
	return s.updateOne(ctx, userID, bson.M{"$addToSet": bson.M{"savedPosts": postID}})
}

func (s *MongoUserStore) RemoveSavedPost(ctx context.Context, userID, postID string) error {
	return s.updateOne(ctx, userID, bson.M{"$pull": bson.M{"savedPosts": postID}})
}

func (s *MongoUserStore) PushNotification(ctx context.Context, userID string, n models.Notification) error {
	// Front-insert and cap in one write so the feed never exceeds the limit,
	// even under concurrent inserts.
	return s.updateOne(ctx, userID, bson.M{
		"$push": bson.M{
			"notifications": bson.M{
				"$each":     bson.A{n},
				"$position": 0,
				"$slice":    models.MaxNotifications,
			},
		},
	})
}

func (s *MongoUserStore) SaveNotifications(ctx context.Context, userID string, notifications []models.Notification) error {
	return s.updateOne(ctx, userID, bson.M{"$set": bson.M{"notifications": notifications}})
}
