package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a capability marker attached to a user. Authorization is a
// flat check over the role set, not a hierarchy.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is a registered end user. Username, email and phone are each
// unique across the collection (backed by unique indexes).
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone" json:"phone"`
	// Bcrypt hash, never the plaintext credential.
	Password  string    `bson:"password" json:"-"`
	Avatar    string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Nickname  string    `bson:"nickname,omitempty" json:"nickname,omitempty"`
	Profile   string    `bson:"profile,omitempty" json:"profile,omitempty"`
	Roles     []Role    `bson:"roles" json:"roles"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// Snapshot copies the fields embedded into reviews and comments. The
// copy is a value, so later profile edits never rewrite history.
func (u *User) Snapshot() Author {
	return Author{
		Username: u.Username,
		Avatar:   u.Avatar,
		Nickname: u.Nickname,
	}
}
