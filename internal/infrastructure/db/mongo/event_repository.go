package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/airbean/order-system/internal/core/domain"
	"github.com/airbean/order-system/internal/core/ports"
)

const eventsCollection = "catalog_events"

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	db *mongo.Database
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) ports.EventRepository {
	return &EventRepository{db: db}
}

// InsertEvent persists a catalog mutation to the audit collection.
func (r *EventRepository) InsertEvent(ctx context.Context, event *domain.CatalogEvent) error {
	doc := bson.M{
		"_id":          event.ID,
		"action":       event.Action,
		"subject_id":   event.SubjectID,
		"actor":        event.Actor,
		"timestamp":    event.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}

	_, err := r.db.Collection(eventsCollection).InsertOne(ctx, doc)
	return err
}
