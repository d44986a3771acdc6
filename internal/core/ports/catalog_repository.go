package ports

import (
	"context"

	"github.com/melodia/catalog-api/internal/core/domain"
)

// ArtistRepository defines persistence for artists.
type ArtistRepository interface {
	Create(ctx context.Context, artist *domain.Artist) (*domain.Artist, error)
	FindByID(ctx context.Context, id string) (*domain.Artist, error)
	FindAll(ctx context.Context) ([]domain.Artist, error)
}

// AlbumRepository defines persistence for albums.
type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) (*domain.Album, error)
	FindAll(ctx context.Context) ([]domain.Album, error)
}

// ConcertRepository defines persistence for concerts.
type ConcertRepository interface {
	Create(ctx context.Context, concert *domain.Concert) (*domain.Concert, error)
	FindAll(ctx context.Context) ([]domain.Concert, error)
}
