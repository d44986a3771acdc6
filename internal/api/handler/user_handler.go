package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/melodia/catalog-api/internal/api/metrics"
	"github.com/melodia/catalog-api/internal/core/ports"
)

// UserHandler handles account reads, self-service updates, admin
// deletion, and favorites mutations.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the caller's own record with favorites.
//
// @Summary      Get the authenticated user
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /user [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// All returns every account, favorites omitted.
//
// @Summary      List all users
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /user/all [get]
func (h *UserHandler) All(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]userResponse, len(users))
	for i := range users {
		items[i] = toUserResponse(&users[i])
	}
	return c.JSON(http.StatusOK, listUsersResponse{Data: items})
}

// Get returns one user by id with favorites.
//
// @Summary      Get a user by id
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete removes a user by id and returns the deleted record.
//
// @Summary      Delete a user by id
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/delete/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := h.userService.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update changes the caller's own username and/or password.
//
// @Summary      Update the authenticated user
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /user/update [patch]
func (h *UserHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), userID, ports.UpdateProfileInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// AddFavorite adds an artist to the caller's favorites. Re-adding an
// already-favorited artist is a no-op success.
//
// @Summary      Add an artist to favorites
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        artistId  path  string  true  "Artist id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/fav/add/{artistId} [patch]
func (h *UserHandler) AddFavorite(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.AddFavorite(c.Request().Context(), userID, c.Param("artistId"))
	if err != nil {
		metrics.FavoriteOpsTotal.WithLabelValues("add", "error").Inc()
		return err
	}

	metrics.FavoriteOpsTotal.WithLabelValues("add", "ok").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// RemoveFavorite removes an artist from the caller's favorites.
// Removing an artist that was never favorited is a no-op success.
//
// @Summary      Remove an artist from favorites
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        artistId  path  string  true  "Artist id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/fav/del/{artistId} [patch]
func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.RemoveFavorite(c.Request().Context(), userID, c.Param("artistId"))
	if err != nil {
		metrics.FavoriteOpsTotal.WithLabelValues("remove", "error").Inc()
		return err
	}

	metrics.FavoriteOpsTotal.WithLabelValues("remove", "ok").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}
