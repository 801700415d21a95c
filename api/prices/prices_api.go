package prices

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kyuna.GO/api"
	"kyuna.GO/core/auth"
	pricesRepo "kyuna.GO/model/repository/prices"
	"kyuna.GO/panel"
	"kyuna.GO/state"
)

func init() {
	api.RegisterModule(RegisterPriceRoutes)
}

// RegisterPriceRoutes wires the gold-price endpoints. There is a single
// active config at a time, so no paging here.
func RegisterPriceRoutes(g *echo.Group, deps *panel.Deps) {
	grp := g.Group("/prices")

	grp.GET("/active", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		price, lerr := st.Price.Load(c.Request().Context())
		if lerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": lerr.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"price":    price,
			"discount": price.DiscountPercent(),
			"savings":  price.Savings(),
		})
	})

	grp.PUT("/:id", func(c echo.Context) error {
		st, ok := sessionStore(c, deps)
		if !ok {
			return nil
		}
		var payload pricesRepo.UpdateRequest
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		price, uerr := st.Price.Update(c.Request().Context(), c.Param("id"), payload)
		if uerr != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": uerr.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"price": price})
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
