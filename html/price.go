package html

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kyuna.GO/api"
	"kyuna.GO/config"
	"kyuna.GO/core/auth"
	pricesRepo "kyuna.GO/model/repository/prices"
	"kyuna.GO/panel"
)

func init() {
	api.RegisterHTMLModule(RegisterPriceHTMLRoutes)
}

// RegisterPriceHTMLRoutes wires the gold-price page: the active config with
// its derived discount, and the update form.
func RegisterPriceHTMLRoutes(e *echo.Echo, deps *panel.Deps) {
	e.GET("/price", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)

		price, err := st.Price.Load(c.Request().Context())
		if err != nil {
			log.Println("price page:", err)
			return c.Render(http.StatusBadGateway, "price.html", map[string]interface{}{
				"AppName": config.AppConfig.AppName,
				"Error":   "Could not load the active price",
			})
		}
		return c.Render(http.StatusOK, "price.html", map[string]interface{}{
			"AppName":  config.AppConfig.AppName,
			"Price":    price,
			"Discount": price.DiscountPercent(),
			"Savings":  price.Savings(),
		})
	})

	e.POST("/price/save", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)

		original, _ := strconv.ParseFloat(c.FormValue("originalPrice"), 64)
		discounted, _ := strconv.ParseFloat(c.FormValue("discountedPrice"), 64)
		id := c.FormValue("id")

		req := pricesRepo.UpdateRequest{OriginalPrice: original, DiscountedPrice: discounted}
		if _, err := st.Price.Update(c.Request().Context(), id, req); err != nil {
			log.Println("price save:", err)
		}
		return c.Redirect(http.StatusFound, "/price")
	})
}
