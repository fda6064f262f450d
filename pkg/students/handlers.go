package students

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/radrium/polylibrary/pkg/params"
)

type handler struct {
	studentService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	students, err := h.studentService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, students)
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	student, err := h.studentService.Retrieve(ctx, params.ID(c, "id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, student)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	payload := StudentPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	student, err := h.studentService.Create(ctx, CreateStudentOptions(payload))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, student)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	payload := StudentPayload{}
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	student, err := h.studentService.Update(ctx, params.ID(c, "id"), UpdateStudentOptions(payload))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, student)
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.studentService.Delete(ctx, params.ID(c, "id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
