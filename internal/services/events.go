package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/longkerdandy/burger-backend/internal/config"
	"github.com/longkerdandy/burger-backend/internal/models"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentMessage is the broker payload published when a comment is
// appended to a review.
type CommentMessage struct {
	ReviewID  string        `json:"review_id"`
	Author    models.Author `json:"author"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
}

// CommentPublisher sends comment events to Kafka, keyed by review id so
// comments on the same review stay ordered within a partition. With no
// brokers configured it is a no-op.
type CommentPublisher struct {
	writer *kafka.Writer
}

func NewCommentPublisher(cfg *config.Config) *CommentPublisher {
	if cfg.KafkaBrokers == "" {
		return &CommentPublisher{}
	}
	return &CommentPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
			Topic:    cfg.KafkaCommentTopic,
			Balancer: &kafka.Hash{},
		},
	}
}

func (p *CommentPublisher) Publish(ctx context.Context, reviewID primitive.ObjectID, comment *models.Comment) error {
	if p.writer == nil {
		return nil
	}

	payload, err := json.Marshal(CommentMessage{
		ReviewID:  reviewID.Hex(),
		Author:    comment.Author,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(reviewID.Hex()),
		Value: payload,
	})
}

func (p *CommentPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
