package html

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"kyuna.GO/api"
	"kyuna.GO/config"
	"kyuna.GO/core/auth"
	"kyuna.GO/core/cache"
	entity "kyuna.GO/model/entity"
	"kyuna.GO/panel"
)

// statsTTLSeconds bounds how long dashboard cards serve cached numbers.
const statsTTLSeconds = 5 * 60

func init() {
	api.RegisterHTMLModule(RegisterDashboardRoutes)
}

// RegisterDashboardRoutes wires the landing page with the order and
// support-query stat cards. Stats are cached under the "stats" tag; order
// and query mutations invalidate the tag.
func RegisterDashboardRoutes(e *echo.Echo, deps *panel.Deps) {
	e.GET("/", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)
		ch := cache.GetInstance()

		var overview entity.OrdersOverview
		if v, hit := ch.Get("stats|orders"); hit {
			overview = v.(entity.OrdersOverview)
		} else {
			ov, err := st.Orders.LoadOverview(c.Request().Context())
			if err != nil {
				log.Println("dashboard: orders overview:", err)
			} else {
				overview = ov
				ch.Set("stats|orders", ov, statsTTLSeconds, []string{"stats"})
			}
		}

		var stats entity.QueryStats
		if v, hit := ch.Get("stats|queries"); hit {
			stats = v.(entity.QueryStats)
		} else {
			qs, err := st.Queries.LoadStats(c.Request().Context())
			if err != nil {
				log.Println("dashboard: query stats:", err)
			} else {
				stats = qs
				ch.Set("stats|queries", qs, statsTTLSeconds, []string{"stats"})
			}
		}

		return c.Render(http.StatusOK, "dashboard.html", map[string]interface{}{
			"AppName":  config.AppConfig.AppName,
			"User":     rec.User,
			"Overview": overview,
			"Stats":    stats,
		})
	})
}
