package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kyuna.GO/config"
	"kyuna.GO/core/session"
)

// CookieName carries the operator's session id.
const CookieName = "kyuna_session"

// contextKey is where the resolved session lands on the echo context.
const contextKey = "session"

// Middleware gates the panel on session presence. The session's token is
// not validated against the backend; a stale token surfaces later as an
// ordinary failed request, exactly like the browser-held token it replaces.
func Middleware(sessions *session.Manager) echo.MiddlewareFunc {
	skipper := buildSkipper()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				// still resolve the session when present so /login can
				// bounce logged-in operators to the dashboard
				if rec, ok := lookup(c, sessions); ok {
					c.Set(contextKey, rec)
				}
				return next(c)
			}
			rec, ok := lookup(c, sessions)
			if !ok {
				if wantsJSON(c) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not logged in"})
				}
				return c.Redirect(http.StatusFound, "/login")
			}
			c.Set(contextKey, rec)
			return next(c)
		}
	}
}

func lookup(c echo.Context, sessions *session.Manager) (session.Record, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return session.Record{}, false
	}
	return sessions.Lookup(c.Request().Context(), cookie.Value)
}

func buildSkipper() middleware.Skipper {
	skipPaths := config.GetAuthSkipperPaths()
	return func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
}

func wantsJSON(c echo.Context) bool {
	return strings.HasPrefix(c.Path(), "/panel/api")
}

// Current returns the session attached to the request.
func Current(c echo.Context) (session.Record, bool) {
	rec, ok := c.Get(contextKey).(session.Record)
	return rec, ok
}

// SetCookie attaches a session cookie to the response.
func SetCookie(c echo.Context, id string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(c echo.Context) {
	SetCookie(c, "", -1)
}
