package books

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/radrium/polylibrary/pkg/params"
)

type handler struct {
	bookService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, books)
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	book, err := h.bookService.Retrieve(ctx, params.ID(c, "id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, book)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	payload := BookPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.bookService.Create(ctx, CreateBookOptions(payload))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, book)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	payload := BookPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.bookService.Update(ctx, params.ID(c, "id"), UpdateBookOptions(payload))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, book)
}

func (h *handler) updateAvailability(c echo.Context) error {
	ctx := c.Request().Context()

	payload := AvailabilityPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	err := h.bookService.UpdateAvailability(ctx, params.ID(c, "id"), payload.Availability)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Book availability updated successfully"})
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.bookService.Delete(ctx, params.ID(c, "id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
