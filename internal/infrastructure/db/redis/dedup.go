package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/airbean/order-system/internal/api/metrics"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for catalog audit events.
// Key format: dedup:<action>:<subject_id>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact event has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, action, subjectID string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(action, subjectID, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	if n > 0 {
		metrics.CatalogEventsDedupTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.CatalogEventsDedupTotal.WithLabelValues("miss").Inc()
	return false, nil
}

// Mark records that this event has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, action, subjectID string, ts time.Time) error {
	return d.client.Set(ctx, d.key(action, subjectID, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(action, subjectID string, ts time.Time) string {
	return fmt.Sprintf("dedup:%s:%s:%d", action, subjectID, ts.Unix())
}
