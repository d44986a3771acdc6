package ports

import (
	"context"

	"github.com/melodia/catalog-api/internal/core/domain"
)

// UserUpdate carries the self-service mutable fields. Empty values are
// left untouched; the role is deliberately absent.
type UserUpdate struct {
	Username     string
	PasswordHash string
}

// UserRepository defines persistence for accounts and their favorite
// edges. Favorite mutations are single atomic document updates.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string, withFavorites bool) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
	AddFavorite(ctx context.Context, userID, artistID string) (*domain.User, error)
	RemoveFavorite(ctx context.Context, userID, artistID string) (*domain.User, error)
}
