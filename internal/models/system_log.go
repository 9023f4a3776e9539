package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SystemLog is a persisted ERROR+ log record.
type SystemLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
	Level     string             `bson:"level"`
	Message   string             `bson:"message"`
	Error     string             `bson:"error,omitempty"`
	RequestID string             `bson:"requestId,omitempty"`
	Extra     map[string]any     `bson:"extra,omitempty"`
}
