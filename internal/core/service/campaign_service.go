package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/airbean/order-system/internal/core/domain"
	"github.com/airbean/order-system/internal/core/ports"
)

type CampaignService struct {
	campaigns ports.CampaignRepository
	products  ports.ProductRepository
	events    ports.EventPublisher
	log       zerolog.Logger
}

func NewCampaignService(
	campaigns ports.CampaignRepository,
	products ports.ProductRepository,
	events ports.EventPublisher,
	log zerolog.Logger,
) *CampaignService {
	return &CampaignService{campaigns: campaigns, products: products, events: events, log: log}
}

// ValidateProducts resolves the requested ids against the catalog in a single
// batch lookup. The missing set is requested minus found, with each distinct
// missing id reported once regardless of input duplicates.
func (s *CampaignService) ValidateProducts(ctx context.Context, productIDs []string) (*domain.ValidationResult, error) {
	if len(productIDs) == 0 {
		return &domain.ValidationResult{Valid: true}, nil
	}

	found, err := s.products.FindManyByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidationUnavailable, err)
	}

	exists := make(map[string]struct{}, len(found))
	for _, p := range found {
		exists[p.ID] = struct{}{}
	}

	var missing []string
	seen := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := exists[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		return &domain.ValidationResult{Valid: false, MissingIDs: missing}, nil
	}

	return &domain.ValidationResult{Valid: true}, nil
}

// CreateCampaign validates the product references and persists the campaign.
// The reference check happens once, here; later product deletions are not
// re-validated.
func (s *CampaignService) CreateCampaign(ctx context.Context, in ports.CreateCampaignInput) (*domain.Campaign, error) {
	result, err := s.ValidateProducts(ctx, in.ProductIDs)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &MissingProductsError{MissingIDs: result.MissingIDs}
	}

	campaign := &domain.Campaign{
		ID:         uuid.NewString(),
		ProductIDs: in.ProductIDs,
		Price:      in.Price,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.campaigns.Create(ctx, campaign); err != nil {
		s.log.Error().Err(err).Msg("failed to create campaign")
		return nil, err
	}

	s.events.Enqueue(ports.CatalogEventInput{
		Action:    domain.ActionCampaignCreated,
		SubjectID: campaign.ID,
		Actor:     in.Actor,
		Timestamp: campaign.CreatedAt,
	})

	s.log.Info().
		Str("campaign_id", campaign.ID).
		Int("products", len(campaign.ProductIDs)).
		Msg("campaign created")

	return campaign, nil
}

func (s *CampaignService) ListCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	return s.campaigns.List(ctx)
}

// MissingProductsError reports which requested product ids do not exist.
type MissingProductsError struct {
	MissingIDs []string
}

func (e *MissingProductsError) Error() string {
	return fmt.Sprintf("one or more products do not exist: %v", e.MissingIDs)
}
