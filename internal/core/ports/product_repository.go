package ports

import (
	"context"

	"github.com/airbean/order-system/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog items.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindManyByIDs resolves ids in a single batch query. Unknown ids are
	// simply absent from the result; only infrastructure failures error.
	FindManyByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
