package ports

import (
	"context"

	"github.com/airbean/order-system/internal/core/domain"
)

// CampaignRepository defines persistence operations for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	List(ctx context.Context) ([]*domain.Campaign, error)
}
