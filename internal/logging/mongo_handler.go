package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/longkerdandy/burger-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionSystemLogs = "system_logs"

// MongoHandler is an slog.Handler that batches ERROR+ logs into the
// system_logs collection.
type MongoHandler struct {
	logs   *mongo.Collection
	mu     sync.Mutex
	buffer []models.SystemLog
	ticker *time.Ticker
	done   chan struct{}
}

func NewMongoHandler(db *mongo.Database) *MongoHandler {
	h := &MongoHandler{
		logs:   db.Collection(collectionSystemLogs),
		buffer: make([]models.SystemLog, 0, 50),
		ticker: time.NewTicker(5 * time.Second),
		done:   make(chan struct{}),
	}
	go h.flushLoop()
	return h
}

func (h *MongoHandler) flushLoop() {
	for {
		select {
		case <-h.ticker.C:
			h.flush()
		case <-h.done:
			h.flush()
			return
		}
	}
}

func (h *MongoHandler) flush() {
	h.mu.Lock()
	if len(h.buffer) == 0 {
		h.mu.Unlock()
		return
	}
	batch := h.buffer
	h.buffer = make([]models.SystemLog, 0, 50)
	h.mu.Unlock()

	docs := make([]any, len(batch))
	for i := range batch {
		docs[i] = batch[i]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := h.logs.InsertMany(ctx, docs); err != nil {
		slog.Error("failed to flush system logs to store", "error", err, "count", len(batch))
	}
}

func (h *MongoHandler) Stop() {
	h.ticker.Stop()
	close(h.done)
}

// Enabled only handles ERROR and above.
func (h *MongoHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *MongoHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        primitive.NewObjectID(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]any)
	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "error":
			entry.Error = a.Value.String()
		case "request_id":
			entry.RequestID = a.Value.String()
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	})
	if len(extra) > 0 {
		entry.Extra = extra
	}

	h.mu.Lock()
	h.buffer = append(h.buffer, entry)
	needFlush := len(h.buffer) >= 50
	h.mu.Unlock()

	if needFlush {
		go h.flush()
	}
	return nil
}

func (h *MongoHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *MongoHandler) WithGroup(name string) slog.Handler {
	return h
}
