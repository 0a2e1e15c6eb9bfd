package domain

import "time"

// Catalog audit actions.
const (
	ActionProductCreated  = "product_created"
	ActionProductUpdated  = "product_updated"
	ActionProductDeleted  = "product_deleted"
	ActionCampaignCreated = "campaign_created"
)

// CatalogEvent records a single mutation of the catalog or campaign set.
type CatalogEvent struct {
	ID        string
	Action    string
	SubjectID string // product id or campaign id
	Actor     string // username that performed the change
	Timestamp time.Time
}
