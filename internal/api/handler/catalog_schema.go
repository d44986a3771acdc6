package handler

import "time"

// --- Artist request / response types ---

type createArtistRequest struct {
	Name    string `json:"name"    validate:"required"`
	Genre   string `json:"genre"   validate:"required"`
	Age     int    `json:"age"     validate:"required,min=10,max=120"`
	Country string `json:"country" validate:"required"`
	URL     string `json:"url"     validate:"required,url"`
}

type artistResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Genre    string            `json:"genre"`
	Age      int               `json:"age"`
	Country  string            `json:"country"`
	URL      string            `json:"url"`
	Albums   []albumResponse   `json:"albums,omitempty"`
	Concerts []concertResponse `json:"concerts,omitempty"`
}

type listArtistsResponse struct {
	Data []artistResponse `json:"data"`
}

// --- Album request / response types ---

type createAlbumRequest struct {
	Title    string `json:"title"     validate:"required"`
	Year     int    `json:"year"      validate:"required,min=1900"`
	Songs    int    `json:"songs"     validate:"required,gt=0"`
	ArtistID string `json:"artist_id" validate:"required"`
}

type albumResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Songs    int    `json:"songs"`
	ArtistID string `json:"artist_id"`
}

type listAlbumsResponse struct {
	Data []albumResponse `json:"data"`
}

// --- Concert request / response types ---

type createConcertRequest struct {
	Location string    `json:"location"  validate:"required"`
	Date     time.Time `json:"date"      validate:"required"`
	Capacity int       `json:"capacity"  validate:"required,gt=0"`
	ArtistID string    `json:"artist_id" validate:"required"`
}

type concertResponse struct {
	ID       string    `json:"id"`
	Location string    `json:"location"`
	Date     time.Time `json:"date"`
	Capacity int       `json:"capacity"`
	ArtistID string    `json:"artist_id"`
}

type listConcertsResponse struct {
	Data []concertResponse `json:"data"`
}
