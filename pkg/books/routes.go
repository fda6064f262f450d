package books

import (
	"github.com/labstack/echo/v4"
	"github.com/radrium/polylibrary/pkg/auth"
	"github.com/radrium/polylibrary/pkg/params"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all catalog routes behind the authorization
// middleware. Role checks live in the policy table, not here.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) *Service {
	bookService := NewService(db)

	h := &handler{
		bookService: bookService,
	}

	validID := params.ValidateID("id", "book")

	g := e.Group("/books")
	g.Use(authMiddleware.Authorize)
	g.GET("", h.list)
	g.GET("/:id", h.retrieve, validID)
	g.POST("", h.create)
	g.PUT("/:id", h.update, validID)
	g.PUT("/:id/availability", h.updateAvailability, validID)
	g.DELETE("/:id", h.remove, validID)

	return bookService
}
