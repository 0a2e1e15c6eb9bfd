// Package metrics defines and registers all custom Prometheus metrics for
// the order API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "airbean"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts session tokens issued at login.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens issued.",
	},
)

// CampaignValidationsTotal counts campaign product-reference checks.
// Label:
//   - result: "valid", "invalid", or "unavailable" (catalog store failure)
var CampaignValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "campaign_validations_total",
		Help:      "Total number of campaign product validations, by result.",
	},
	[]string{"result"},
)

// CatalogEventsProcessedTotal counts catalog audit events that were persisted.
// Label:
//   - action: e.g. "product_created", "campaign_created"
var CatalogEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_events_processed_total",
		Help:      "Total number of catalog audit events successfully processed.",
	},
	[]string{"action"},
)

// CatalogEventsDedupTotal counts deduplication decisions on audit events.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event)
var CatalogEventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_events_dedup_total",
		Help:      "Total number of audit-event dedup checks, by result (hit/miss).",
	},
	[]string{"result"},
)

// CatalogEventsQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", ...)
var CatalogEventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_events_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
