package ports

import (
	"context"
	"time"

	"github.com/melodia/catalog-api/internal/core/domain"
)

// CreateArtistInput is the service-level artist creation DTO.
type CreateArtistInput struct {
	Name    string
	Genre   string
	Age     int
	Country string
	URL     string
}

// CreateAlbumInput is the service-level album creation DTO.
type CreateAlbumInput struct {
	Title    string
	Year     int
	Songs    int
	ArtistID string
}

// CreateConcertInput is the service-level concert creation DTO.
type CreateConcertInput struct {
	Location string
	Date     time.Time
	Capacity int
	ArtistID string
}

// ArtistService lists artists with their releases and live dates, and
// creates new ones.
type ArtistService interface {
	List(ctx context.Context) ([]domain.Artist, error)
	Create(ctx context.Context, input CreateArtistInput) (*domain.Artist, error)
}

// AlbumService lists and creates albums.
type AlbumService interface {
	List(ctx context.Context) ([]domain.Album, error)
	Create(ctx context.Context, input CreateAlbumInput) (*domain.Album, error)
}

// ConcertService lists and creates concerts.
type ConcertService interface {
	List(ctx context.Context) ([]domain.Concert, error)
	Create(ctx context.Context, input CreateConcertInput) (*domain.Concert, error)
}
