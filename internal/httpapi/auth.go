package httpapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/BobinYang/ResXResourceManager/internal/auth"
)

const bearerPrefix = "Bearer "

// requireToken guards mutating routes with the configured bearer token. An
// empty configured hash leaves the API open, which is the expected mode for
// local use.
func (s *Server) requireToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if strings.TrimSpace(s.opts.APITokenHash) == "" {
				return next(c)
			}

			token := bearerToken(c)
			if token == "" || !auth.VerifyToken(token, s.opts.APITokenHash) {
				return unauthorizedResponse(c)
			}
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}
