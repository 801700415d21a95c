package html

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	entity "kyuna.GO/model/entity"
)

func renderItemsPage(t *testing.T, data map[string]interface{}) string {
	t.Helper()
	funcs := template.FuncMap{
		"criticalCSS": func() template.CSS { return "" },
	}
	tmpl := template.Must(template.New("").Funcs(funcs).ParseGlob("pages/*.html"))

	var buf strings.Builder
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "items.html", data))
	return buf.String()
}

func TestItemsPage_SearchNotGatedByPendingLoad(t *testing.T) {
	out := renderItemsPage(t, map[string]interface{}{
		"AppName":    "Kyuna Admin",
		"Items":      nil,
		"HasMore":    true,
		"SearchTerm": "",
	})

	// Only the load-more path waits out an in-flight request. A fresh
	// search must always go out, superseding whatever is pending.
	require.Contains(t, out, "if (append && (loading")
	require.NotContains(t, out, "if (loading) return")
	require.Contains(t, out, "if (!append) gen++")
}

func TestItemsPage_DeleteFormInBothRenderPaths(t *testing.T) {
	out := renderItemsPage(t, map[string]interface{}{
		"AppName":    "Kyuna Admin",
		"HasMore":    false,
		"SearchTerm": "",
		"Items": []entity.Item{
			{ID: "abc123", Name: "Gold Ring", Category: "rings", Price: 1200, Availability: "In Stock"},
		},
	})

	// server-rendered row
	require.Contains(t, out, `action="/items/abc123/delete"`)
	// rows appended by the infinite-scroll script get the same form
	require.Contains(t, out, `action="/items/' + it._id + '/delete"`)
}
