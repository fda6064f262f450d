package users

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/radrium/polylibrary/pkg/params"
)

type handler struct {
	userService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Request().Context()

	query := SearchUsersQuery{}
	if err := c.Bind(&query); err != nil {
		return errors.WithStack(err)
	}

	users, err := h.userService.Search(ctx, query.SearchTerm)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

func (h *handler) listWithBooks(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.ListWithBooks(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.userService.Retrieve(ctx, params.ID(c, "id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	payload := UserPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userService.Create(ctx, CreateUserOptions(payload))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	payload := UserPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userService.Update(ctx, params.ID(c, "id"), UpdateUserOptions(payload))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.userService.Delete(ctx, params.ID(c, "id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
