package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	entity "kyuna.GO/model/entity"
)

func fixedPage(items []thing, hasNext bool) ListFunc[thing] {
	return func(ctx context.Context, page int, term string) (ListPage[thing], error) {
		return ListPage[thing]{
			Items: items,
			Page:  entity.Pagination{CurrentPage: page, HasNextPage: hasNext},
		}, nil
	}
}

func TestModule_ListReplaceThenAppend(t *testing.T) {
	m := NewModule(thingConfig())
	ctx := context.Background()

	snap, err := m.List(ctx, fixedPage([]thing{{ID: "1"}, {ID: "2"}}, true), 1, false, "")
	require.NoError(t, err)
	require.Len(t, snap.Items, 2)
	require.True(t, snap.HasMore)

	snap, err = m.List(ctx, fixedPage([]thing{{ID: "3"}}, false), 2, true, "")
	require.NoError(t, err)
	require.Len(t, snap.Items, 3)
	require.Equal(t, 2, snap.CurrentPage)
	require.False(t, snap.HasMore)
}

func TestModule_AppendSuppressedWhenExhausted(t *testing.T) {
	m := NewModule(thingConfig())
	ctx := context.Background()

	_, err := m.List(ctx, fixedPage([]thing{{ID: "1"}}, false), 1, false, "")
	require.NoError(t, err)

	called := false
	fetch := func(ctx context.Context, page int, term string) (ListPage[thing], error) {
		called = true
		return ListPage[thing]{}, nil
	}
	snap, err := m.List(ctx, fetch, 2, true, "")
	require.NoError(t, err)
	require.False(t, called, "exhausted append must not hit the backend")
	require.Len(t, snap.Items, 1)
}

func TestModule_AppendSuppressedWhileLoading(t *testing.T) {
	m := NewModule(thingConfig())
	ctx := context.Background()

	inFlight := make(chan struct{})
	release := make(chan struct{})
	slow := func(ctx context.Context, page int, term string) (ListPage[thing], error) {
		close(inFlight)
		<-release
		return ListPage[thing]{Items: []thing{{ID: "1"}}, Page: entity.Pagination{CurrentPage: 1, HasNextPage: true}}, nil
	}

	done := make(chan Slice[thing])
	go func() {
		snap, _ := m.List(ctx, slow, 1, false, "")
		done <- snap
	}()
	<-inFlight

	called := false
	fetch := func(ctx context.Context, page int, term string) (ListPage[thing], error) {
		called = true
		return ListPage[thing]{}, nil
	}
	_, err := m.List(ctx, fetch, 2, true, "")
	require.NoError(t, err)
	require.False(t, called, "append during an in-flight load must be suppressed")

	close(release)
	snap := <-done
	require.Len(t, snap.Items, 1)
}

func TestModule_StaleReplaceDiscarded(t *testing.T) {
	m := NewModule(thingConfig())
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	stale := func(ctx context.Context, page int, term string) (ListPage[thing], error) {
		close(started)
		<-release
		return ListPage[thing]{Items: []thing{{ID: "old"}}, Page: entity.Pagination{CurrentPage: 1}}, nil
	}

	done := make(chan Slice[thing])
	go func() {
		snap, _ := m.List(ctx, stale, 1, false, "old term")
		done <- snap
	}()
	<-started

	// a fresh search supersedes the in-flight load
	snap, err := m.List(ctx, fixedPage([]thing{{ID: "new"}}, false), 1, false, "new term")
	require.NoError(t, err)
	require.Equal(t, "new", snap.Items[0].ID)

	close(release)
	staleSnap := <-done
	require.Equal(t, "new", staleSnap.Items[0].ID, "stale response must not overwrite the newer page")
	require.Equal(t, "new term", staleSnap.SearchTerm)
}

func TestModule_ErrorKeepsExistingPages(t *testing.T) {
	m := NewModule(thingConfig())
	ctx := context.Background()

	_, err := m.List(ctx, fixedPage([]thing{{ID: "1"}, {ID: "2"}}, true), 1, false, "")
	require.NoError(t, err)

	boom := func(ctx context.Context, page int, term string) (ListPage[thing], error) {
		return ListPage[thing]{}, errors.New("backend down")
	}
	snap, err := m.List(ctx, boom, 2, true, "")
	require.Error(t, err)
	require.Len(t, snap.Items, 2, "failed load must keep pages already on screen")
	require.False(t, snap.Loading)
}
