package ports

import (
	"context"

	"github.com/melodia/catalog-api/internal/core/domain"
)

// AuthService handles registration and credential exchange.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginThrottle bounds failed login attempts per username. Allow errors
// are advisory: a broken throttle backend must not lock everyone out.
type LoginThrottle interface {
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
