package ports

import (
	"context"

	"github.com/airbean/order-system/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
