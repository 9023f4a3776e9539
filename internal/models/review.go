package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is a brief snapshot of a User, embedded in reviews and
// comments. The user id is not kept because username is also unique.
type Author struct {
	Username string `bson:"username" json:"username"`
	Avatar   string `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Nickname string `bson:"nickname,omitempty" json:"nickname,omitempty"`
}

// Comment is an append-only entry inside a review. Once posted it can
// not be modified or deleted.
type Comment struct {
	Author    Author    `bson:"author" json:"author"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

// Review is a user-posted restaurant review. Scores and author are
// immutable after creation; only content and images can change.
// CommentsCount is derived from len(comments) at query time and is
// never persisted.
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RestaurantID  primitive.ObjectID `bson:"restaurantId,omitempty" json:"restaurant_id,omitempty"`
	Author        Author             `bson:"author" json:"author"`
	Taste         int                `bson:"taste" json:"taste"`
	Texture       int                `bson:"texture" json:"texture"`
	Virtual       int                `bson:"virtual" json:"virtual"`
	Content       string             `bson:"content,omitempty" json:"content,omitempty"`
	Images        []string           `bson:"images,omitempty" json:"images,omitempty"`
	Comments      []Comment          `bson:"comments,omitempty" json:"comments,omitempty"`
	CommentsCount int64              `bson:"commentsCount,omitempty" json:"comments_count"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty" json:"updated_at"`
}
