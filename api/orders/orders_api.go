package orders

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kyuna.GO/api"
	"kyuna.GO/core/auth"
	"kyuna.GO/core/cache"
	"kyuna.GO/panel"
	"kyuna.GO/state"
)

func init() {
	api.RegisterModule(RegisterOrderRoutes)
}

// RegisterOrderRoutes wires the order endpoints: paged listing, status
// transitions, admin cancellation and the stats overview card.
func RegisterOrderRoutes(g *echo.Group, deps *panel.Deps) {
	grp := g.Group("/orders")

	// GET /panel/api/orders?page=&append=1
	grp.GET("", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		page := pageParam(c)
		appendTo := c.QueryParam("append") == "1"

		snap, lerr := st.Orders.Load(c.Request().Context(), page, appendTo)
		if lerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": lerr.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"orders":      snap.Items,
			"currentPage": snap.CurrentPage,
			"hasMore":     snap.HasMore,
		})
	})

	grp.GET("/overview", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		ov, oerr := st.Orders.LoadOverview(c.Request().Context())
		if oerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": oerr.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"overview": ov})
	})

	grp.PUT("/:id/status", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		var payload struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		order, uerr := st.Orders.UpdateStatus(c.Request().Context(), c.Param("id"), payload.Status)
		if uerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": uerr.Error()})
		}
		cache.GetInstance().DeleteByTag("stats")
		return c.JSON(http.StatusOK, echo.Map{"order": order})
	})

	grp.PUT("/:id/cancel", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		var payload struct {
			Reason string `json:"reason"`
		}
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		order, cerr := st.Orders.Cancel(c.Request().Context(), c.Param("id"), payload.Reason)
		if cerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": cerr.Error()})
		}
		cache.GetInstance().DeleteByTag("stats")
		return c.JSON(http.StatusOK, echo.Map{"order": order})
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
