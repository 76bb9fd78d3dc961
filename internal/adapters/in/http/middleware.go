package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// adminOnly guards admin routes with a bearer token checked against the
// authenticator port. The identity is stored on the request context for
// handlers that want it.
func (s *Server) adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return s.fail(ctx, http.StatusUnauthorized, "Authentication required", nil)
		}

		identity, err := s.auth.Authenticate(token)
		if err != nil {
			return s.fail(ctx, http.StatusUnauthorized, "Invalid credentials", err)
		}

		ctx.Set("admin", identity)
		return next(ctx)
	}
}
