package ports

import (
	"context"

	"github.com/airbean/order-system/internal/core/domain"
)

// UpdateProductInput carries the mutable fields for a product update.
type UpdateProductInput struct {
	Title       string
	Description string
	Price       float64
}

// ProductService defines use-case operations on the catalog.
type ProductService interface {
	CreateProduct(ctx context.Context, p *domain.Product, actor string) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in UpdateProductInput, actor string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string, actor string) error
}
