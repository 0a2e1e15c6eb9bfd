package ports

import (
	"context"

	"github.com/airbean/order-system/internal/core/domain"
)

// CreateCampaignInput carries the data for a new campaign.
type CreateCampaignInput struct {
	ProductIDs []string
	Price      float64
	Actor      string
}

// CampaignService validates and creates price campaigns.
type CampaignService interface {
	// ValidateProducts checks every id against the catalog in one batch
	// lookup. A non-nil error means the check itself could not run
	// (domain.ErrValidationUnavailable); an invalid set is reported in the
	// result with the distinct missing ids.
	ValidateProducts(ctx context.Context, productIDs []string) (*domain.ValidationResult, error)
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context) ([]*domain.Campaign, error)
}
