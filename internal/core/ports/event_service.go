package ports

import (
	"context"
	"time"
)

// CatalogEventInput is the DTO handed from producers to the audit pipeline.
type CatalogEventInput struct {
	Action    string
	SubjectID string
	Actor     string
	Timestamp time.Time
}

// EventService processes catalog audit events.
type EventService interface {
	Process(ctx context.Context, event CatalogEventInput) error
}

// EventPublisher is the producer-side interface; the queue dispatcher
// implements it. Publishing must never block a request handler beyond the
// queue buffer.
type EventPublisher interface {
	Enqueue(event CatalogEventInput)
}
