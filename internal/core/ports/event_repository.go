package ports

import (
	"context"

	"github.com/airbean/order-system/internal/core/domain"
)

// EventRepository persists catalog audit events.
type EventRepository interface {
	InsertEvent(ctx context.Context, event *domain.CatalogEvent) error
}
