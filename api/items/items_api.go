package items

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kyuna.GO/api"
	"kyuna.GO/core/auth"
	"kyuna.GO/core/cache"
	entity "kyuna.GO/model/entity"
	"kyuna.GO/panel"
	"kyuna.GO/state"
)

func init() {
	api.RegisterModule(RegisterItemRoutes)
}

// RegisterItemRoutes wires the item endpoints the items screen calls for
// infinite scroll, search and mutations.
func RegisterItemRoutes(g *echo.Group, deps *panel.Deps) {
	grp := g.Group("/items")

	// GET /panel/api/items?page=&q=&append=1
	grp.GET("", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		page := pageParam(c)
		appendTo := c.QueryParam("append") == "1"
		term := c.QueryParam("q")

		snap, lerr := st.Items.Load(c.Request().Context(), page, appendTo, term)
		if lerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": lerr.Error()})
		}
		return c.JSON(http.StatusOK, sliceJSON(snap))
	})

	grp.GET("/:id", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		item, gerr := st.Items.GetByID(c.Request().Context(), c.Param("id"))
		if gerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": gerr.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"item": item})
	})

	grp.PUT("/:id", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		var payload entity.Item
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		item, uerr := st.Items.Update(c.Request().Context(), c.Param("id"), payload)
		if uerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": uerr.Error()})
		}
		cache.GetInstance().DeleteByTag("items")
		return c.JSON(http.StatusOK, echo.Map{"item": item})
	})

	grp.DELETE("/:id", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		if derr := st.Items.Delete(c.Request().Context(), c.Param("id")); derr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": derr.Error()})
		}
		cache.GetInstance().DeleteByTag("items")
		return c.JSON(http.StatusOK, echo.Map{"deleted": c.Param("id")})
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

func sliceJSON(s state.Slice[entity.Item]) echo.Map {
	return echo.Map{
		"items":       s.Items,
		"currentPage": s.CurrentPage,
		"hasMore":     s.HasMore,
		"searchTerm":  s.SearchTerm,
	}
}
