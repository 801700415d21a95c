package queries

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kyuna.GO/api"
	"kyuna.GO/core/auth"
	"kyuna.GO/core/cache"
	queriesRepo "kyuna.GO/model/repository/queries"
	"kyuna.GO/panel"
	"kyuna.GO/state"
)

func init() {
	api.RegisterModule(RegisterQueryRoutes)
}

// RegisterQueryRoutes wires the support-query endpoints: paged listing,
// per-query admin edits, bulk status updates and the stats card.
func RegisterQueryRoutes(g *echo.Group, deps *panel.Deps) {
	grp := g.Group("/queries")

	// GET /panel/api/queries?page=&append=1
	grp.GET("", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		page := pageParam(c)
		appendTo := c.QueryParam("append") == "1"

		snap, lerr := st.Queries.Load(c.Request().Context(), page, appendTo)
		if lerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": lerr.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"queries":     snap.Items,
			"currentPage": snap.CurrentPage,
			"hasMore":     snap.HasMore,
		})
	})

	grp.GET("/stats", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		stats, serr := st.Queries.LoadStats(c.Request().Context())
		if serr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": serr.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"statistics": stats})
	})

	grp.PUT("/:id", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		var payload queriesRepo.UpdateRequest
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		q, uerr := st.Queries.Update(c.Request().Context(), c.Param("id"), payload)
		if uerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": uerr.Error()})
		}
		cache.GetInstance().DeleteByTag("stats")
		return c.JSON(http.StatusOK, echo.Map{"query": q})
	})

	grp.PUT("/bulk-update", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		var payload struct {
			IDs    []string `json:"ids"`
			Status string   `json:"status"`
		}
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(payload.IDs) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no ids given"})
		}
		if berr := st.Queries.BulkUpdate(c.Request().Context(), payload.IDs, payload.Status); berr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": berr.Error()})
		}
		cache.GetInstance().DeleteByTag("stats")
		return c.JSON(http.StatusOK, echo.Map{"updated": len(payload.IDs)})
	})
}

func sessionStore(c echo.Context, deps *panel.Deps) (*state.Store, bool) {
	rec, ok := auth.Current(c)
	if !ok {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "not logged in"})
		return nil, false
	}
	return deps.StoreFor(rec), true
}

func pageParam(c echo.Context) int {
	page := 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	return page
}
