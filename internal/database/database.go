package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/longkerdandy/burger-backend/internal/config"
	"github.com/longkerdandy/burger-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

func Connect(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(50))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	Client = client
	DB = client.Database(cfg.MongoDatabase)

	slog.Info("database connected", "database", cfg.MongoDatabase)
	return nil
}

// EnsureIndexes creates the unique identity indexes and the geospatial
// index the near-query depends on. Safe to run on every startup.
func EnsureIndexes(ctx context.Context) error {
	users := DB.Collection(repository.CollectionUsers)
	if _, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	restaurants := DB.Collection(repository.CollectionRestaurants)
	if _, err := restaurants.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	}); err != nil {
		return fmt.Errorf("failed to create geo index: %w", err)
	}

	reviews := DB.Collection(repository.CollectionReviews)
	if _, err := reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "restaurantId", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}

	return nil
}

func Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return Client.Ping(ctx, readpref.Primary())
}

func Disconnect(ctx context.Context) error {
	return Client.Disconnect(ctx)
}
