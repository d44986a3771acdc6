package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/melodia/catalog-api/internal/core/domain"
	"github.com/melodia/catalog-api/internal/core/ports"
)

// AlbumService implements album listing and creation.
type AlbumService struct {
	albums  ports.AlbumRepository
	artists ports.ArtistRepository
	logger  zerolog.Logger
}

func NewAlbumService(albums ports.AlbumRepository, artists ports.ArtistRepository, logger zerolog.Logger) *AlbumService {
	return &AlbumService{albums: albums, artists: artists, logger: logger}
}

// List returns all albums.
func (s *AlbumService) List(ctx context.Context) ([]domain.Album, error) {
	return s.albums.FindAll(ctx)
}

// Create stores a new album after resolving its artist.
func (s *AlbumService) Create(ctx context.Context, input ports.CreateAlbumInput) (*domain.Album, error) {
	if _, err := s.artists.FindByID(ctx, input.ArtistID); err != nil {
		return nil, err
	}

	album := &domain.Album{
		Title:    input.Title,
		Year:     input.Year,
		Songs:    input.Songs,
		ArtistID: input.ArtistID,
	}

	created, err := s.albums.Create(ctx, album)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("album_id", created.ID).Str("artist_id", created.ArtistID).Msg("album created")
	return created, nil
}
