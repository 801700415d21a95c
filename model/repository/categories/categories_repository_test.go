package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"kyuna.GO/backend"
)

func listServer(t *testing.T, body string) *CategoriesRepository {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewCategoriesRepository(backend.NewClient(srv.URL, nil, backend.StaticToken("tok")))
}

func TestList_DataEnvelope(t *testing.T) {
	repo := listServer(t, `{
		"data": [{"_id": "c1", "name": "Rings", "productsCount": 12}],
		"pagination": {"currentPage": 1, "totalPages": 3, "hasNextPage": true}
	}`)

	cats, pg, err := repo.List(context.Background(), 1, 100, "", "")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Equal(t, "c1", cats[0].ID)
	require.Equal(t, "Rings", cats[0].Name)
	require.Equal(t, 12, cats[0].ProductsCount)
	require.Equal(t, 1, pg.CurrentPage)
	require.True(t, pg.HasNextPage)
}

func TestList_CategoriesEnvelope(t *testing.T) {
	repo := listServer(t, `{
		"categories": [{"_id": "c2", "name": "Necklaces"}]
	}`)

	cats, pg, err := repo.List(context.Background(), 1, 100, "", "")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Equal(t, "Necklaces", cats[0].Name)
	require.Zero(t, pg.CurrentPage, "missing pagination decodes to zero values")
}

func TestList_EmptyBody(t *testing.T) {
	repo := listServer(t, `{}`)

	cats, _, err := repo.List(context.Background(), 1, 100, "", "")
	require.NoError(t, err)
	require.Empty(t, cats)
}

func TestList_QueryParams(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = map[string]string{}
		for k := range r.URL.Query() {
			got[k] = r.URL.Query().Get(k)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": nil})
	}))
	t.Cleanup(srv.Close)
	repo := NewCategoriesRepository(backend.NewClient(srv.URL, nil, backend.StaticToken("tok")))

	_, _, err := repo.List(context.Background(), 2, 50, "gold", "name")
	require.NoError(t, err)
	require.Equal(t, "2", got["page"])
	require.Equal(t, "50", got["limit"])
	require.Equal(t, "gold", got["search"])
	require.Equal(t, "name", got["sort"])
}
