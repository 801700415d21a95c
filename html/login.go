package html

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"kyuna.GO/api"
	"kyuna.GO/config"
	"kyuna.GO/core/auth"
	"kyuna.GO/core/session"
	"kyuna.GO/panel"
)

func init() {
	api.RegisterHTMLModule(RegisterLoginRoutes)
}

// RegisterLoginRoutes wires the login form and logout.
func RegisterLoginRoutes(e *echo.Echo, deps *panel.Deps) {
	e.GET("/login", func(c echo.Context) error {
		if _, ok := auth.Current(c); ok {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.Render(http.StatusOK, "login.html", map[string]interface{}{
			"AppName": config.AppConfig.AppName,
			"Email":   "",
		})
	})

	e.POST("/login", func(c echo.Context) error {
		email := c.FormValue("email")
		password := c.FormValue("password")

		rec, err := deps.Sessions.Login(c.Request().Context(), email, password)
		if err != nil {
			msg := "Something went wrong, try again"
			if errors.Is(err, session.ErrInvalidCredentials) {
				msg = "Invalid credentials"
			} else {
				log.Println("login error:", err)
			}
			return c.Render(http.StatusUnauthorized, "login.html", map[string]interface{}{
				"AppName": config.AppConfig.AppName,
				"Error":   msg,
				"Email":   email,
			})
		}

		auth.SetCookie(c, rec.ID, config.AppConfig.SessionTTLMin*60)
		return c.Redirect(http.StatusFound, "/")
	})

	e.GET("/logout", func(c echo.Context) error {
		if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
			deps.Sessions.Logout(c.Request().Context(), cookie.Value)
			deps.DropStore(cookie.Value)
		}
		auth.ClearCookie(c)
		return c.Redirect(http.StatusFound, "/login")
	})
}
