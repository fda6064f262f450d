package users

import (
	"github.com/labstack/echo/v4"
	"github.com/radrium/polylibrary/pkg/params"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all user routes. The static /search and
// /with-books routes must not fall through to /:id.
func RegisterRoutes(e *echo.Echo, db *bun.DB) *Service {
	userService := NewService(db)

	h := &handler{
		userService: userService,
	}

	validID := params.ValidateID("id", "user")

	g := e.Group("/users")
	g.GET("", h.list)
	g.GET("/search", h.search)
	g.GET("/with-books", h.listWithBooks)
	g.GET("/:id", h.retrieve, validID)
	g.POST("", h.create)
	g.PUT("/:id", h.update, validID)
	g.DELETE("/:id", h.remove, validID)

	return userService
}
