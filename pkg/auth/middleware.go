package auth

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/radrium/polylibrary/pkg/errcodes"
)

// Context keys for storing the decoded identity.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// Middleware provides bearer-token authorization.
type Middleware struct {
	authService *Service
	policy      *Policy
}

// NewMiddleware creates a new auth middleware around a service and a policy
// table.
func NewMiddleware(authService *Service, policy *Policy) *Middleware {
	return &Middleware{
		authService: authService,
		policy:      policy,
	}
}

// Authorize extracts the bearer token from the Authorization header,
// verifies it, and checks the decoded role against the policy table for the
// request's method and path. A missing token is a 401; a bad token or a
// policy miss is a 403. On success the decoded identity is attached to the
// context.
func (m *Middleware) Authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return errcodes.Unauthorized("Authentication required")
		}

		claims, err := m.authService.ValidateToken(token)
		if err != nil {
			return errcodes.Forbidden("Invalid or expired token")
		}

		req := c.Request()
		if !m.policy.Allows(req.Method, req.URL.Path, claims.Role) {
			return errcodes.Forbidden("You don't have permission to access this endpoint")
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
