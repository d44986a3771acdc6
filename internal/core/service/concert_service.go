package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/melodia/catalog-api/internal/core/domain"
	"github.com/melodia/catalog-api/internal/core/ports"
)

// ConcertService implements concert listing and creation.
type ConcertService struct {
	concerts ports.ConcertRepository
	artists  ports.ArtistRepository
	logger   zerolog.Logger
}

func NewConcertService(concerts ports.ConcertRepository, artists ports.ArtistRepository, logger zerolog.Logger) *ConcertService {
	return &ConcertService{concerts: concerts, artists: artists, logger: logger}
}

// List returns all concerts.
func (s *ConcertService) List(ctx context.Context) ([]domain.Concert, error) {
	return s.concerts.FindAll(ctx)
}

// Create stores a new concert after resolving its artist.
func (s *ConcertService) Create(ctx context.Context, input ports.CreateConcertInput) (*domain.Concert, error) {
	if _, err := s.artists.FindByID(ctx, input.ArtistID); err != nil {
		return nil, err
	}

	concert := &domain.Concert{
		Location: input.Location,
		Date:     input.Date,
		Capacity: input.Capacity,
		ArtistID: input.ArtistID,
	}

	created, err := s.concerts.Create(ctx, concert)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("concert_id", created.ID).Str("artist_id", created.ArtistID).Msg("concert created")
	return created, nil
}
