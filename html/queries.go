package html

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"kyuna.GO/api"
	"kyuna.GO/config"
	"kyuna.GO/core/auth"
	"kyuna.GO/core/cache"
	entity "kyuna.GO/model/entity"
	queriesRepo "kyuna.GO/model/repository/queries"
	"kyuna.GO/panel"
)

func init() {
	api.RegisterHTMLModule(RegisterQueryHTMLRoutes)
}

// RegisterQueryHTMLRoutes wires the support-queries list page with inline
// status/priority edits and bulk status updates.
func RegisterQueryHTMLRoutes(e *echo.Echo, deps *panel.Deps) {
	e.GET("/queries", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)

		snap, err := st.Queries.Load(c.Request().Context(), 1, false)
		if err != nil {
			log.Println("queries page:", err)
			return c.Render(http.StatusBadGateway, "queries.html", map[string]interface{}{
				"AppName": config.AppConfig.AppName,
				"Error":   "Could not load queries",
				"Queries": nil,
				"HasMore": false,
				"Stats":   entity.QueryStats{},
			})
		}
		stats, serr := st.Queries.LoadStats(c.Request().Context())
		if serr != nil {
			log.Println("queries stats:", serr)
		}
		return c.Render(http.StatusOK, "queries.html", map[string]interface{}{
			"AppName": config.AppConfig.AppName,
			"Queries": snap.Items,
			"HasMore": snap.HasMore,
			"Stats":   stats,
		})
	})

	e.POST("/queries/:id", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)

		req := queriesRepo.UpdateRequest{
			Status:   c.FormValue("status"),
			Priority: c.FormValue("priority"),
		}
		if tags := strings.TrimSpace(c.FormValue("tags")); tags != "" {
			for _, t := range strings.Split(tags, ",") {
				if t = strings.TrimSpace(t); t != "" {
					req.Tags = append(req.Tags, t)
				}
			}
		}
		if _, err := st.Queries.Update(c.Request().Context(), c.Param("id"), req); err != nil {
			log.Println("query update:", err)
		}
		cache.GetInstance().DeleteByTag("stats")
		return c.Redirect(http.StatusFound, "/queries")
	})

	e.POST("/queries/bulk", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)

		form, err := c.FormParams()
		if err != nil {
			return c.Redirect(http.StatusFound, "/queries")
		}
		ids := form["ids"]
		status := c.FormValue("status")
		if len(ids) > 0 && status != "" {
			if err := st.Queries.BulkUpdate(c.Request().Context(), ids, status); err != nil {
				log.Println("query bulk update:", err)
			}
			cache.GetInstance().DeleteByTag("stats")
		}
		return c.Redirect(http.StatusFound, "/queries")
	})
}
