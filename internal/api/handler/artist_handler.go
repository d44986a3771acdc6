package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/melodia/catalog-api/internal/core/ports"
)

// ArtistHandler handles artist listing and creation.
type ArtistHandler struct {
	artistService ports.ArtistService
}

func NewArtistHandler(artistService ports.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

// List returns all artists with their albums and concerts.
//
// @Summary      List artists
// @Tags         artists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listArtistsResponse
// @Failure      401  {object}  errorResponse
// @Router       /artists [get]
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.artistService.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]artistResponse, len(artists))
	for i := range artists {
		items[i] = toArtistResponse(&artists[i])
	}
	return c.JSON(http.StatusOK, listArtistsResponse{Data: items})
}

// Create stores a new artist.
//
// @Summary      Create an artist
// @Tags         artists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArtistRequest  true  "Artist details"
// @Success      201   {object}  artistResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /artists [post]
func (h *ArtistHandler) Create(c echo.Context) error {
	var req createArtistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	artist, err := h.artistService.Create(c.Request().Context(), ports.CreateArtistInput{
		Name:    req.Name,
		Genre:   req.Genre,
		Age:     req.Age,
		Country: req.Country,
		URL:     req.URL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toArtistResponse(artist))
}
