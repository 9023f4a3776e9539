package dto

import "time"

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// UpdateResponse carries the matched/modified counts of an update;
// 0/0 distinguishes "no such document" from a zero-effect write.
type UpdateResponse struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	DB        string    `json:"db"`
}
