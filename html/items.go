package html

import (
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"kyuna.GO/api"
	"kyuna.GO/config"
	"kyuna.GO/core/auth"
	entity "kyuna.GO/model/entity"
	"kyuna.GO/panel"
	"kyuna.GO/service/imageflow"
)

func init() {
	api.RegisterHTMLModule(RegisterItemHTMLRoutes)
}

// RegisterItemHTMLRoutes wires the items list page and the item form. The
// list page renders the first page server-side; further pages and search go
// through /panel/api/items from the page script.
func RegisterItemHTMLRoutes(e *echo.Echo, deps *panel.Deps) {
	e.GET("/items", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)

		term := c.QueryParam("q")
		snap, err := st.Items.Load(c.Request().Context(), 1, false, term)
		if err != nil {
			log.Println("items page:", err)
			return c.Render(http.StatusBadGateway, "items.html", map[string]interface{}{
				"AppName":    config.AppConfig.AppName,
				"Error":      "Could not load items",
				"Items":      nil,
				"HasMore":    false,
				"SearchTerm": term,
			})
		}
		return c.Render(http.StatusOK, "items.html", map[string]interface{}{
			"AppName":    config.AppConfig.AppName,
			"Items":      snap.Items,
			"HasMore":    snap.HasMore,
			"SearchTerm": snap.SearchTerm,
		})
	})

	e.GET("/items/new", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)
		cats, err := st.Categories.Load(c.Request().Context(), 1, false, "")
		if err != nil {
			log.Println("item form categories:", err)
		}
		return c.Render(http.StatusOK, "item_form.html", map[string]interface{}{
			"AppName":    config.AppConfig.AppName,
			"Item":       entity.Item{},
			"Categories": cats.Items,
		})
	})

	e.GET("/items/:id/edit", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)
		item, err := st.Items.GetByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			log.Println("item form:", err)
			return c.Redirect(http.StatusFound, "/items")
		}
		cats, cerr := st.Categories.Load(c.Request().Context(), 1, false, "")
		if cerr != nil {
			log.Println("item form categories:", cerr)
		}
		return c.Render(http.StatusOK, "item_form.html", map[string]interface{}{
			"AppName":    config.AppConfig.AppName,
			"Item":       item,
			"Categories": cats.Items,
		})
	})

	e.POST("/items/save", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)
		ctx := c.Request().Context()

		id := c.FormValue("id")
		payload := itemFromForm(c)

		current := []entity.ItemImage{}
		if id != "" {
			existing, err := st.Items.GetByID(ctx, id)
			if err != nil {
				log.Println("item save: fetch current:", err)
				return c.Redirect(http.StatusFound, "/items")
			}
			current = existing.Images
		}

		submitted, err := submittedImages(c, current)
		if err != nil {
			log.Println("item save: read uploads:", err)
			return c.Render(http.StatusBadRequest, "item_form.html", map[string]interface{}{
				"AppName": config.AppConfig.AppName,
				"Item":    payload,
				"Error":   "Could not read uploaded files",
			})
		}

		form := imageflow.NewFormSession(current)
		form.ApplyFileList(submitted)

		saver := &imageflow.Saver{Uploads: st.Items, Items: st.Items}
		outcome, err := saver.Save(ctx, form, payload, id)
		if err != nil {
			log.Println("item save:", err)
			return c.Render(http.StatusBadGateway, "item_form.html", map[string]interface{}{
				"AppName": config.AppConfig.AppName,
				"Item":    payload,
				"Error":   "Save failed: " + err.Error(),
			})
		}
		if len(outcome.FailedDeletes) > 0 {
			log.Printf("item save: %d image(s) left orphaned: %v",
				len(outcome.FailedDeletes), outcome.FailedDeletes)
		}
		return c.Redirect(http.StatusFound, "/items")
	})

	e.POST("/items/:id/delete", func(c echo.Context) error {
		rec, ok := auth.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		st := deps.StoreFor(rec)
		if err := st.Items.Delete(c.Request().Context(), c.Param("id")); err != nil {
			log.Println("item delete:", err)
		}
		return c.Redirect(http.StatusFound, "/items")
	})
}

// itemFromForm maps form fields onto an item payload. Specifications come
// as one "key: value" pair per line.
func itemFromForm(c echo.Context) entity.Item {
	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	discount, _ := strconv.ParseFloat(c.FormValue("discountPrice"), 64)

	item := entity.Item{
		Name:          c.FormValue("name"),
		Category:      c.FormValue("category"),
		Price:         price,
		DiscountPrice: discount,
		Weight:        c.FormValue("weight"),
		Availability:  c.FormValue("availability"),
		Description:   c.FormValue("description"),
	}

	specs := map[string]string{}
	for _, line := range strings.Split(c.FormValue("specifications"), "\n") {
		k, v, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k != "" {
			specs[k] = v
		}
	}
	if len(specs) > 0 {
		item.Specifications = specs
	}
	return item
}

// submittedImages rebuilds the visible image list the operator left in the
// form: the kept existing images (hidden "keep" fields, by publicId) in
// their submitted order, followed by the newly attached files.
func submittedImages(c echo.Context, current []entity.ItemImage) ([]entity.ItemImage, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	byPublicID := make(map[string]entity.ItemImage, len(current))
	for _, img := range current {
		byPublicID[img.PublicID] = img
	}

	var out []entity.ItemImage
	for _, publicID := range form.Value["keep"] {
		if img, ok := byPublicID[publicID]; ok {
			out = append(out, img)
		}
	}

	for _, fh := range form.File["images"] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		name, normalized, err := imageflow.NormalizeUpload(fh.Filename, data)
		if err != nil {
			log.Printf("item save: normalize %s: %v, uploading as-is", fh.Filename, err)
			name, normalized = fh.Filename, data
		}
		out = append(out, entity.ItemImage{
			UID:       uuid.NewString(),
			Name:      name,
			LocalData: normalized,
		})
	}
	return out, nil
}
