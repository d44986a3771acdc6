package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/melodia/catalog-api/internal/core/domain"
	"github.com/melodia/catalog-api/internal/core/ports"
)

// ArtistService implements artist listing and creation. Listings embed
// each artist's albums and concerts.
type ArtistService struct {
	artists  ports.ArtistRepository
	albums   ports.AlbumRepository
	concerts ports.ConcertRepository
	logger   zerolog.Logger
}

func NewArtistService(artists ports.ArtistRepository, albums ports.AlbumRepository, concerts ports.ConcertRepository, logger zerolog.Logger) *ArtistService {
	return &ArtistService{artists: artists, albums: albums, concerts: concerts, logger: logger}
}

// List returns all artists with albums and concerts attached.
func (s *ArtistService) List(ctx context.Context) ([]domain.Artist, error) {
	artists, err := s.artists.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	albums, err := s.albums.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	concerts, err := s.concerts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	albumsByArtist := make(map[string][]domain.Album, len(artists))
	for _, a := range albums {
		albumsByArtist[a.ArtistID] = append(albumsByArtist[a.ArtistID], a)
	}
	concertsByArtist := make(map[string][]domain.Concert, len(artists))
	for _, c := range concerts {
		concertsByArtist[c.ArtistID] = append(concertsByArtist[c.ArtistID], c)
	}

	for i := range artists {
		artists[i].Albums = albumsByArtist[artists[i].ID]
		artists[i].Concerts = concertsByArtist[artists[i].ID]
	}
	return artists, nil
}

// Create stores a new artist.
func (s *ArtistService) Create(ctx context.Context, input ports.CreateArtistInput) (*domain.Artist, error) {
	artist := &domain.Artist{
		Name:    input.Name,
		Genre:   input.Genre,
		Age:     input.Age,
		Country: input.Country,
		URL:     input.URL,
	}

	created, err := s.artists.Create(ctx, artist)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("artist_id", created.ID).Str("name", created.Name).Msg("artist created")
	return created, nil
}
