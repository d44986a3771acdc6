package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/melodia/catalog-api/internal/core/ports"
)

// ConcertHandler handles concert listing and creation.
type ConcertHandler struct {
	concertService ports.ConcertService
}

func NewConcertHandler(concertService ports.ConcertService) *ConcertHandler {
	return &ConcertHandler{concertService: concertService}
}

// List returns all concerts.
//
// @Summary      List concerts
// @Tags         concerts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listConcertsResponse
// @Failure      401  {object}  errorResponse
// @Router       /concerts [get]
func (h *ConcertHandler) List(c echo.Context) error {
	concerts, err := h.concertService.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]concertResponse, len(concerts))
	for i := range concerts {
		items[i] = toConcertResponse(&concerts[i])
	}
	return c.JSON(http.StatusOK, listConcertsResponse{Data: items})
}

// Create stores a new concert.
//
// @Summary      Create a concert
// @Tags         concerts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createConcertRequest  true  "Concert details"
// @Success      201   {object}  concertResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /concerts [post]
func (h *ConcertHandler) Create(c echo.Context) error {
	var req createConcertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	concert, err := h.concertService.Create(c.Request().Context(), ports.CreateConcertInput{
		Location: req.Location,
		Date:     req.Date,
		Capacity: req.Capacity,
		ArtistID: req.ArtistID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toConcertResponse(concert))
}
