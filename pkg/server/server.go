package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/radrium/polylibrary/pkg/auth"
	"github.com/radrium/polylibrary/pkg/binder"
	"github.com/radrium/polylibrary/pkg/books"
	"github.com/radrium/polylibrary/pkg/config"
	"github.com/radrium/polylibrary/pkg/errcodes"
	"github.com/radrium/polylibrary/pkg/students"
	"github.com/radrium/polylibrary/pkg/users"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	// Register auth routes and build the authorization middleware from the
	// returned service and the static policy table.
	authService := auth.RegisterRoutes(e, db, cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService, auth.DefaultPolicy())

	// Catalog routes sit behind the role policy; students and users are open.
	books.RegisterRoutes(e, db, authMiddleware)
	students.RegisterRoutes(e, db)
	users.RegisterRoutes(e, db)

	// Front-end pages fetch against the JSON endpoints above.
	if cfg.PublicDir != "" {
		e.Static("/", cfg.PublicDir)
	}

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
