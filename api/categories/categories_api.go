package categories

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
	api.RegisterModule(RegisterCategoryRoutes)
}

// RegisterCategoryRoutes wires the category endpoints used by the
// categories screen.
func RegisterCategoryRoutes(g *echo.Group, deps *panel.Deps) {
	grp := g.Group("/categories")

	// GET /panel/api/categories?page=&q=&sort=&append=1
	grp.GET("", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		if sort := c.QueryParam("sort"); sort != "" {
			st.Categories.SetSort(sort)
		}
		page := pageParam(c)
		appendTo := c.QueryParam("append") == "1"
		term := c.QueryParam("q")

		snap, lerr := st.Categories.Load(c.Request().Context(), page, appendTo, term)
		if lerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": lerr.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"categories":  snap.Items,
			"currentPage": snap.CurrentPage,
			"hasMore":     snap.HasMore,
		})
	})

	grp.GET("/:id", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		cat, gerr := st.Categories.GetByID(c.Request().Context(), c.Param("id"))
		if gerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": gerr.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"category": cat})
	})

	grp.POST("", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		var payload entity.Category
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		cat, cerr := st.Categories.Create(c.Request().Context(), payload)
		if cerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": cerr.Error()})
		}
		cache.GetInstance().DeleteByTag("categories")
		return c.JSON(http.StatusCreated, echo.Map{"category": cat})
	})

	grp.PUT("/:id", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		var payload entity.Category
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		cat, uerr := st.Categories.Update(c.Request().Context(), c.Param("id"), payload)
		if uerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": uerr.Error()})
		}
		cache.GetInstance().DeleteByTag("categories")
		return c.JSON(http.StatusOK, echo.Map{"category": cat})
	})

	grp.DELETE("/:id", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		if derr := st.Categories.Delete(c.Request().Context(), c.Param("id")); derr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": derr.Error()})
		}
		cache.GetInstance().DeleteByTag("categories")
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
