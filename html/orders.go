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

func init() {
	api.RegisterHTMLModule(RegisterOrderHTMLRoutes)
}

// RegisterOrderHTMLRoutes wires the orders list page. Status changes and
// cancellations post back here; further pages load through /panel/api.
func RegisterOrderHTMLRoutes(e *echo.Echo, deps *panel.Deps) {
	e.GET("/orders", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)

		snap, err := st.Orders.Load(c.Request().Context(), 1, false)
		if err != nil {
			log.Println("orders page:", err)
			return c.Render(http.StatusBadGateway, "orders.html", map[string]interface{}{
				"AppName":  config.AppConfig.AppName,
				"Error":    "Could not load orders",
				"Orders":   nil,
				"HasMore":  false,
				"Statuses": entity.OrderStatuses,
			})
		}
		return c.Render(http.StatusOK, "orders.html", map[string]interface{}{
			"AppName":  config.AppConfig.AppName,
			"Orders":   snap.Items,
			"HasMore":  snap.HasMore,
			"Statuses": entity.OrderStatuses,
		})
	})

	e.POST("/orders/:id/status", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)
		if _, err := st.Orders.UpdateStatus(c.Request().Context(), c.Param("id"), c.FormValue("status")); err != nil {
			log.Println("order status:", err)
		}
		cache.GetInstance().DeleteByTag("stats")
		return c.Redirect(http.StatusFound, "/orders")
	})

	e.POST("/orders/:id/cancel", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)
		if _, err := st.Orders.Cancel(c.Request().Context(), c.Param("id"), c.FormValue("reason")); err != nil {
			log.Println("order cancel:", err)
		}
		cache.GetInstance().DeleteByTag("stats")
		return c.Redirect(http.StatusFound, "/orders")
	})
}
