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
	api.RegisterHTMLModule(RegisterCategoryHTMLRoutes)
}

// RegisterCategoryHTMLRoutes wires the categories list page and form.
func RegisterCategoryHTMLRoutes(e *echo.Echo, deps *panel.Deps) {
	e.GET("/categories", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)

		if sort := c.QueryParam("sort"); sort != "" {
			st.Categories.SetSort(sort)
		}
		snap, err := st.Categories.Load(c.Request().Context(), 1, false, c.QueryParam("q"))
		if err != nil {
			log.Println("categories page:", err)
			return c.Render(http.StatusBadGateway, "categories.html", map[string]interface{}{
				"AppName":    config.AppConfig.AppName,
				"Error":      "Could not load categories",
				"Categories": nil,
				"SearchTerm": "",
			})
		}
		return c.Render(http.StatusOK, "categories.html", map[string]interface{}{
			"AppName":    config.AppConfig.AppName,
			"Categories": snap.Items,
			"SearchTerm": snap.SearchTerm,
		})
	})

	e.GET("/categories/new", func(c echo.Context) error {
		if _, ok := auth.Current(c); !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		return c.Render(http.StatusOK, "category_form.html", map[string]interface{}{
			"AppName":  config.AppConfig.AppName,
			"Category": entity.Category{},
		})
	})

	e.GET("/categories/:id/edit", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)
		cat, err := st.Categories.GetByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			log.Println("category form:", err)
			return c.Redirect(http.StatusFound, "/categories")
		}
		return c.Render(http.StatusOK, "category_form.html", map[string]interface{}{
			"AppName":  config.AppConfig.AppName,
			"Category": cat,
		})
	})

	e.POST("/categories/save", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)
		ctx := c.Request().Context()

		id := c.FormValue("id")
		payload := entity.Category{
			Name:  c.FormValue("name"),
			Image: c.FormValue("image"),
		}

		var err error
		if id == "" {
			_, err = st.Categories.Create(ctx, payload)
		} else {
			_, err = st.Categories.Update(ctx, id, payload)
		}
		if err != nil {
			log.Println("category save:", err)
			return c.Render(http.StatusBadGateway, "category_form.html", map[string]interface{}{
				"AppName":  config.AppConfig.AppName,
				"Category": payload,
				"Error":    "Save failed: " + err.Error(),
			})
		}
		cache.GetInstance().DeleteByTag("categories")
		return c.Redirect(http.StatusFound, "/categories")
	})

	e.POST("/categories/:id/delete", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)
		if err := st.Categories.Delete(c.Request().Context(), c.Param("id")); err != nil {
			log.Println("category delete:", err)
		}
		cache.GetInstance().DeleteByTag("categories")
		return c.Redirect(http.StatusFound, "/categories")
	})
}
