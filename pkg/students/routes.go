package students

import (
	"github.com/labstack/echo/v4"
	"github.com/radrium/polylibrary/pkg/params"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all student routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB) *Service {
	studentService := NewService(db)

	h := &handler{
		studentService: studentService,
	}

	validID := params.ValidateID("id", "student")

	g := e.Group("/students")
	g.GET("", h.list)
	g.GET("/:id", h.retrieve, validID)
	g.POST("", h.create)
	g.PUT("/:id", h.update, validID)
	g.DELETE("/:id", h.remove, validID)

	return studentService
}
