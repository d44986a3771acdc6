package domain

import "errors"

var ErrAlbumNotFound = errors.New("album not found")

// Album is a studio release attached to an artist.
type Album struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Songs    int    `json:"songs"`
	ArtistID string `json:"artist_id"`
}
