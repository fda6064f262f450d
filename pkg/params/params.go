// Package params holds route-parameter validation middleware. It's the path
// half of request validation; body payloads are validated by the binder.
package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/radrium/polylibrary/pkg/errcodes"
)

// ValidateID returns middleware that requires the named path parameter to be
// a positive whole number. On failure the request is rejected with a 400
// before the handler runs. The parsed value is stored on the context under
// the parameter name so handlers don't re-parse it.
func ValidateID(name, resource string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := strconv.Atoi(c.Param(name))
			if err != nil || id <= 0 {
				return errcodes.InvalidID(resource)
			}

			c.Set(name, id)

			return next(c)
		}
	}
}

// ID retrieves a path identifier previously parsed by ValidateID.
func ID(c echo.Context, name string) int {
	id, _ := c.Get(name).(int)
	return id
}
