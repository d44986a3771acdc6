package ports

import (
	"context"

	"github.com/melodia/catalog-api/internal/core/domain"
)

// UpdateProfileInput carries the plaintext self-service changes; empty
// fields are skipped. Role changes are not representable here.
type UpdateProfileInput struct {
	Username string
	Password string
}

// UserService handles account reads, self-service updates, admin
// deletion, and the user↔artist favorites relation.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) (*domain.User, error)
	AddFavorite(ctx context.Context, userID, artistID string) (*domain.User, error)
	RemoveFavorite(ctx context.Context, userID, artistID string) (*domain.User, error)
}
