package domain

import (
	"errors"
	"time"
)

var ErrConcertNotFound = errors.New("concert not found")

// Concert is a scheduled live date for an artist.
type Concert struct {
	ID       string    `json:"id"`
	Location string    `json:"location"`
	Date     time.Time `json:"date"`
	Capacity int       `json:"capacity"`
	ArtistID string    `json:"artist_id"`
}
