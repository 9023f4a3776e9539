package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/longkerdandy/burger-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PasswordHasher hashes a plaintext credential before it is persisted.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UserRepo is the store for user documents.
type UserRepo struct {
	users  *mongo.Collection
	hasher PasswordHasher
}

func NewUserRepo(db *mongo.Database, hasher PasswordHasher) *UserRepo {
	return &UserRepo{users: db.Collection(CollectionUsers), hasher: hasher}
}

// Exists reports whether any user already claims the given username,
// email or phone. Used as the pre-insert conflict check; the unique
// indexes remain the backstop for races.
func (r *UserRepo) Exists(ctx context.Context, user *models.User) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": user.Username},
		bson.M{"email": user.Email},
		bson.M{"phone": user.Phone},
	}}
	n, err := r.users.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return n > 0, err
}

// ExistsUsername reports whether a user with the given username exists.
func (r *UserRepo) ExistsUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.users.CountDocuments(ctx, bson.M{"username": username}, options.Count().SetLimit(1))
	return n > 0, err
}

// Insert hashes the credential and stores the new user. A concurrent
// duplicate surfaces as a unique-index error from the driver.
func (r *UserRepo) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	hash, err := r.hasher.Hash(user.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hash
	user.UpdatedAt = time.Now().UTC()
	if _, err := r.users.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByUsername loads a user; mongo.ErrNoDocuments when absent.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateByUsername replaces the profile fields only. Roles and the
// credential are never mutated through this path.
func (r *UserRepo) UpdateByUsername(ctx context.Context, user *models.User) (*mongo.UpdateResult, error) {
	return r.users.UpdateOne(ctx,
		bson.M{"username": user.Username},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "email", Value: user.Email},
			{Key: "phone", Value: user.Phone},
			{Key: "nickname", Value: user.Nickname},
			{Key: "avatar", Value: user.Avatar},
			{Key: "profile", Value: user.Profile},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}})
}

// DeleteByUsername removes a user; zero deleted when absent.
func (r *UserRepo) DeleteByUsername(ctx context.Context, username string) (*mongo.DeleteResult, error) {
	return r.users.DeleteOne(ctx, bson.M{"username": username})
}
