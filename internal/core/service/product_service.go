package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/airbean/order-system/internal/core/domain"
	"github.com/airbean/order-system/internal/core/ports"
)

// MenuCache abstracts the read cache for the product listing (Redis).
// Cache failures are never fatal; the catalog store is authoritative.
type MenuCache interface {
	Get(ctx context.Context) ([]*domain.Product, bool, error)
	Set(ctx context.Context, products []*domain.Product) error
	Invalidate(ctx context.Context) error
}

type ProductService struct {
	repo   ports.ProductRepository
	cache  MenuCache
	events ports.EventPublisher
	log    zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache MenuCache, events ports.EventPublisher, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, events: events, log: log}
}

func (s *ProductService) CreateProduct(ctx context.Context, p *domain.Product, actor string) (*domain.Product, error) {
	p.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.events.Enqueue(ports.CatalogEventInput{
		Action:    domain.ActionProductCreated,
		SubjectID: p.ID,
		Actor:     actor,
		Timestamp: p.CreatedAt,
	})

	s.log.Info().Str("product_id", p.ID).Msg("product created")
	return p, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// ListProducts serves the menu from cache when possible, falling back to the
// catalog store on a miss or cache error.
func (s *ProductService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	if cached, hit, err := s.cache.Get(ctx); err != nil {
		s.log.Warn().Err(err).Msg("menu cache read failed, falling back to store")
	} else if hit {
		return cached, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, products); err != nil {
		s.log.Warn().Err(err).Msg("menu cache write failed")
	}
	return products, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, in ports.UpdateProductInput, actor string) (*domain.Product, error) {
	now := time.Now().UTC()
	updated, err := s.repo.Update(ctx, id, &domain.Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		ModifiedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.events.Enqueue(ports.CatalogEventInput{
		Action:    domain.ActionProductUpdated,
		SubjectID: id,
		Actor:     actor,
		Timestamp: now,
	})

	return updated, nil
}

// DeleteProduct removes a catalog item. Campaigns referencing the product are
// intentionally left untouched; the audit event records the deletion.
func (s *ProductService) DeleteProduct(ctx context.Context, id string, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.events.Enqueue(ports.CatalogEventInput{
		Action:    domain.ActionProductDeleted,
		SubjectID: id,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})

	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("menu cache invalidation failed")
	}
}
