package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	entity "kyuna.GO/model/entity"
)

type thing struct {
	ID   string
	Name string
}

func thingConfig() Config[thing] {
	return Config[thing]{
		ID:      func(t thing) string { return t.ID },
		HasMore: HasMoreNextPageFlag,
	}
}

func TestReduce_ReplaceResetsPageAndTerm(t *testing.T) {
	cfg := thingConfig()
	s := Slice[thing]{
		Items:       []thing{{ID: "1"}, {ID: "2"}, {ID: "3"}},
		CurrentPage: 3,
		SearchTerm:  "",
		Loading:     true,
	}

	out := Reduce(cfg, s, Replace[thing]{
		Items: []thing{{ID: "9"}},
		Page:  entity.Pagination{CurrentPage: 1, HasNextPage: true},
		Term:  "ring",
	})

	require.Len(t, out.Items, 1)
	require.Equal(t, "9", out.Items[0].ID)
	require.Equal(t, 1, out.CurrentPage)
	require.Equal(t, "ring", out.SearchTerm)
	require.True(t, out.HasMore)
	require.False(t, out.Loading)
}

func TestReduce_AppendAccumulatesPages(t *testing.T) {
	cfg := thingConfig()
	s := Slice[thing]{
		Items:       []thing{{ID: "1"}, {ID: "2"}},
		CurrentPage: 1,
		HasMore:     true,
	}

	out := Reduce(cfg, s, Append[thing]{
		Items: []thing{{ID: "3"}, {ID: "4"}},
		Page:  entity.Pagination{CurrentPage: 2, HasNextPage: false},
	})

	require.Len(t, out.Items, 4)
	require.Equal(t, "1", out.Items[0].ID)
	require.Equal(t, "4", out.Items[3].ID)
	require.Equal(t, 2, out.CurrentPage)
	require.False(t, out.HasMore)

	// input slice untouched
	require.Len(t, s.Items, 2)
}

func TestReduce_AppendFallsBackToNextPageNumber(t *testing.T) {
	cfg := thingConfig()
	s := Slice[thing]{CurrentPage: 2}

	out := Reduce(cfg, s, Append[thing]{
		Items: []thing{{ID: "5"}},
		Page:  entity.Pagination{HasNextPage: true}, // backend omitted currentPage
	})
	require.Equal(t, 3, out.CurrentPage)
}

func TestReduce_UpdateByID(t *testing.T) {
	cfg := thingConfig()
	s := Slice[thing]{Items: []thing{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}}

	out := Reduce(cfg, s, UpdateByID[thing]{Item: thing{ID: "2", Name: "B"}})
	require.Equal(t, "B", out.Items[1].Name)
	require.Equal(t, "a", out.Items[0].Name)
	// original backing array not mutated
	require.Equal(t, "b", s.Items[1].Name)
}

func TestReduce_UpdateByID_NoMatchReturnsSameItems(t *testing.T) {
	cfg := thingConfig()
	items := []thing{{ID: "1"}, {ID: "2"}}
	s := Slice[thing]{Items: items}

	out := Reduce(cfg, s, UpdateByID[thing]{Item: thing{ID: "404"}})
	// same backing slice, not a copy
	require.Equal(t, &items[0], &out.Items[0])
	require.Len(t, out.Items, 2)
}

func TestReduce_RemoveByID(t *testing.T) {
	cfg := thingConfig()
	s := Slice[thing]{Items: []thing{{ID: "1"}, {ID: "2"}, {ID: "3"}}}

	out := Reduce(cfg, s, RemoveByID[thing]{ID: "2"})
	require.Len(t, out.Items, 2)
	require.Equal(t, "1", out.Items[0].ID)
	require.Equal(t, "3", out.Items[1].ID)

	unchanged := Reduce(cfg, out, RemoveByID[thing]{ID: "nope"})
	require.Equal(t, &out.Items[0], &unchanged.Items[0])
}

func TestReduce_PrependAndReplaceAll(t *testing.T) {
	cfg := thingConfig()
	s := Slice[thing]{Items: []thing{{ID: "2"}}, CurrentPage: 4, SearchTerm: "x"}

	out := Reduce(cfg, s, Prepend[thing]{Item: thing{ID: "1"}})
	require.Equal(t, "1", out.Items[0].ID)
	require.Equal(t, "2", out.Items[1].ID)

	out = Reduce(cfg, out, ReplaceAll[thing]{Items: []thing{{ID: "9"}}})
	require.Len(t, out.Items, 1)
	// pagination fields untouched by a list-root swap
	require.Equal(t, 4, out.CurrentPage)
	require.Equal(t, "x", out.SearchTerm)
}

func TestReduce_SetSelectedLeavesListAlone(t *testing.T) {
	cfg := thingConfig()
	s := Slice[thing]{Items: []thing{{ID: "1"}}}

	out := Reduce(cfg, s, SetSelected[thing]{Item: thing{ID: "7", Name: "sel"}})
	require.NotNil(t, out.Selected)
	require.Equal(t, "7", out.Selected.ID)
	require.Len(t, out.Items, 1)
}

func TestReduce_SameActionSameStateSameResult(t *testing.T) {
	cfg := thingConfig()
	s := Slice[thing]{
		Items:       []thing{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}},
		CurrentPage: 2,
		SearchTerm:  "ring",
		HasMore:     true,
		Loading:     true,
	}

	actions := []Action[thing]{
		Replace[thing]{Items: []thing{{ID: "9"}}, Page: entity.Pagination{CurrentPage: 1, HasNextPage: true}, Term: "q"},
		Append[thing]{Items: []thing{{ID: "3"}}, Page: entity.Pagination{CurrentPage: 3}},
		ReplaceAll[thing]{Items: []thing{{ID: "5"}}},
		Prepend[thing]{Item: thing{ID: "0"}},
		UpdateByID[thing]{Item: thing{ID: "2", Name: "B"}},
		RemoveByID[thing]{ID: "1"},
		SetSelected[thing]{Item: thing{ID: "7"}},
		SetLoading[thing]{Loading: false},
	}
	for _, a := range actions {
		first := Reduce(cfg, s, a)
		second := Reduce(cfg, s, a)
		require.Equal(t, first, second)
	}
}

func TestHasMoreConventions(t *testing.T) {
	require.True(t, HasMoreNextPageFlag(entity.Pagination{HasNextPage: true}))
	require.False(t, HasMoreNextPageFlag(entity.Pagination{CurrentPage: 1, TotalPages: 5}))

	require.True(t, HasMorePageCount(entity.Pagination{CurrentPage: 1, TotalPages: 5}))
	require.False(t, HasMorePageCount(entity.Pagination{CurrentPage: 5, TotalPages: 5}))
	require.False(t, HasMorePageCount(entity.Pagination{HasNextPage: true}))
}
