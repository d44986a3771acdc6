package handler

import (
	"github.com/melodia/catalog-api/internal/core/domain"
)

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
	if len(u.Favorites) > 0 {
		resp.Favorites = make([]artistResponse, len(u.Favorites))
		for i, a := range u.Favorites {
			resp.Favorites[i] = toArtistResponse(&a)
		}
	}
	return resp
}

func toArtistResponse(a *domain.Artist) artistResponse {
	resp := artistResponse{
		ID:      a.ID,
		Name:    a.Name,
		Genre:   a.Genre,
		Age:     a.Age,
		Country: a.Country,
		URL:     a.URL,
	}
	if len(a.Albums) > 0 {
		resp.Albums = make([]albumResponse, len(a.Albums))
		for i, al := range a.Albums {
			resp.Albums[i] = toAlbumResponse(&al)
		}
	}
	if len(a.Concerts) > 0 {
		resp.Concerts = make([]concertResponse, len(a.Concerts))
		for i, co := range a.Concerts {
			resp.Concerts[i] = toConcertResponse(&co)
		}
	}
	return resp
}

func toAlbumResponse(a *domain.Album) albumResponse {
	return albumResponse{
		ID:       a.ID,
		Title:    a.Title,
		Year:     a.Year,
		Songs:    a.Songs,
		ArtistID: a.ArtistID,
	}
}

func toConcertResponse(c *domain.Concert) concertResponse {
	return concertResponse{
		ID:       c.ID,
		Location: c.Location,
		Date:     c.Date.UTC(),
		Capacity: c.Capacity,
		ArtistID: c.ArtistID,
	}
}
