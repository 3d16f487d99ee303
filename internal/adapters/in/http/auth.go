package http

import (
	"errors"
	"strings"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorContextKey = "medorders.actor"

// BasicAuth resolves HTTP basic credentials to an actor and stores it on
// the request context. Requests without credentials get 401 with a
// WWW-Authenticate challenge; the health check and API docs are public.
func BasicAuth(authenticator ports.Authenticator) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Skipper: isPublic,
		Realm:   "medorders",
		Validator: func(username, password string, ctx echo.Context) (bool, error) {
			a, err := authenticator.Authenticate(ctx.Request().Context(), username, password)
			if err != nil {
				if errors.Is(err, ports.ErrInvalidCredentials) {
					return false, nil
				}
				return false, err
			}
			ctx.Set(actorContextKey, a)
			return true, nil
		},
	})
}

func isPublic(ctx echo.Context) bool {
	path := ctx.Request().URL.Path
	return path == "/api/v1/health" || strings.HasPrefix(path, "/swagger")
}

func actorFrom(ctx echo.Context) (actor.Actor, error) {
	a, ok := ctx.Get(actorContextKey).(actor.Actor)
	if !ok || a.Validate() != nil {
		return actor.Actor{}, echo.ErrUnauthorized
	}
	return a, nil
}
