package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/noteblog-dev/noteblog/db"
	"github.com/noteblog-dev/noteblog/internal/auth"
	"github.com/noteblog-dev/noteblog/internal/models"
	"github.com/noteblog-dev/noteblog/internal/router"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// seedAdmin creates the admin account on first boot when ADMIN_USERNAME and
// ADMIN_PASSWORD are set.
func seedAdmin(ctx context.Context, users store.UserStore) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")

	if username == "" || password == "" {
		return nil
	}

	if _, err := users.FindByUsername(ctx, username); err == nil {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return err
	}

	admin := models.User{
		ID:            uuid.NewString(),
		Username:      username,
		PasswordHash:  string(passwordHash),
		Email:         username + "@noteblog.local",
		FullName:      "Administrator",
		Role:          models.RoleAdmin,
		Followers:     []string{},
		Following:     []string{},
		SavedPosts:    []string{},
		Notifications: []models.Notification{},
		CreatedAt:     time.Now(),
	}

	if err := users.Insert(ctx, &admin); err != nil {
		return err
	}

	logrus.WithField("username", username).Info("Seeded admin user")
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Warn("No .env file loaded")
	}

	if err := auth.InitJWTSecret(); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize JWT secret")
	}

	uri := os.Getenv("MONGO_URI")

	if uri == "" {
		uri = "mongodb://localhost:27017"
		logrus.Println("MONGO_URI not set, defaulting to localhost")
	}

	name := os.Getenv("MONGO_DB")

	if name == "" {
		name = "noteblog"
	}

	if err := db.ConnectDatabase(uri, name); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to MongoDB")
	}

	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			logrus.WithError(err).Warn("Failed to disconnect from MongoDB")
		}
	}()

	if err := db.EnsureIndexes(context.Background()); err != nil {
		logrus.WithError(err).Fatal("Failed to create indexes")
	}

	users := store.NewMongoUserStore(db.Database)
	posts := store.NewMongoPostStore(db.Database)
	messages := store.NewMongoMessageStore(db.Database)

	if err := seedAdmin(context.Background(), users); err != nil {
		logrus.WithError(err).Fatal("Failed to seed admin user")
	}

	r := router.NewRouter(users, posts, messages)

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		logrus.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
