package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/melodia/catalog-api/internal/core/ports"
)

// AlbumHandler handles album listing and creation.
type AlbumHandler struct {
	albumService ports.AlbumService
}

func NewAlbumHandler(albumService ports.AlbumService) *AlbumHandler {
	return &AlbumHandler{albumService: albumService}
}

// List returns all albums.
//
// @Summary      List albums
// @Tags         albums
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAlbumsResponse
// @Failure      401  {object}  errorResponse
// @Router       /albums [get]
func (h *AlbumHandler) List(c echo.Context) error {
	albums, err := h.albumService.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]albumResponse, len(albums))
	for i := range albums {
		items[i] = toAlbumResponse(&albums[i])
	}
	return c.JSON(http.StatusOK, listAlbumsResponse{Data: items})
}

// Create stores a new album.
//
// @Summary      Create an album
// @Tags         albums
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAlbumRequest  true  "Album details"
// @Success      201   {object}  albumResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /albums [post]
func (h *AlbumHandler) Create(c echo.Context) error {
	var req createAlbumRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	album, err := h.albumService.Create(c.Request().Context(), ports.CreateAlbumInput{
		Title:    req.Title,
		Year:     req.Year,
		Songs:    req.Songs,
		ArtistID: req.ArtistID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAlbumResponse(album))
}
