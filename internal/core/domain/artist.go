package domain

import "errors"

var ErrArtistNotFound = errors.New("artist not found")

// Artist is the central catalog aggregate. Albums and Concerts are
// populated on listing reads; favorites reference artists by id.
type Artist struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Genre    string    `json:"genre"`
	Age      int       `json:"age"`
	Country  string    `json:"country"`
	URL      string    `json:"url"`
	Albums   []Album   `json:"albums,omitempty"`
	Concerts []Concert `json:"concerts,omitempty"`
}
