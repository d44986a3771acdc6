package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/melodia/catalog-api/internal/core/domain"
	"github.com/melodia/catalog-api/internal/core/ports"
)

// UserService implements account reads, self-service updates, admin
// deletion, and the favorites relation.
type UserService struct {
	users   ports.UserRepository
	artists ports.ArtistRepository
	logger  zerolog.Logger
}

func NewUserService(users ports.UserRepository, artists ports.ArtistRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, artists: artists, logger: logger}
}

// Profile returns the caller's own record with favorites expanded.
func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID, true)
}

// GetUser returns any user by id with favorites expanded (admin read).
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id, true)
}

// ListUsers returns every account, favorites omitted.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// UpdateProfile changes the caller's username and/or password. The role
// is not updatable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	update := ports.UserUpdate{Username: input.Username}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = string(hash)
	}

	updated, err := s.users.Update(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}

// DeleteUser removes an account and, with it, its favorite edges.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("username", deleted.Username).Msg("user deleted")
	return deleted, nil
}

// AddFavorite establishes the user→artist edge. Re-adding an existing
// edge is a no-op success. The artist must exist.
func (s *UserService) AddFavorite(ctx context.Context, userID, artistID string) (*domain.User, error) {
	if _, err := s.artists.FindByID(ctx, artistID); err != nil {
		return nil, err
	}
	return s.users.AddFavorite(ctx, userID, artistID)
}

// RemoveFavorite drops the user→artist edge; removing an edge that was
// never added is a no-op success. The artist must exist.
func (s *UserService) RemoveFavorite(ctx context.Context, userID, artistID string) (*domain.User, error) {
	if _, err := s.artists.FindByID(ctx, artistID); err != nil {
		return nil, err
	}
	return s.users.RemoveFavorite(ctx, userID, artistID)
}
