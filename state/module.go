package state

import (
	"context"
	"sync"

	entity "kyuna.GO/model/entity"
)

// ListPage is one fetched page, as the repositories return it.
type ListPage[T any] struct {
	Items []T
	Page  entity.Pagination
}

// ListFunc fetches one page from the backend.
type ListFunc[T any] func(ctx context.Context, page int, term string) (ListPage[T], error)

// Module owns one resource slice. All mutation goes through Dispatch, which
// applies the pure reducer under the module lock. A request-generation
// counter detects list responses that were superseded by a newer replace
// (fresh search or reload) and discards them instead of letting them race.
type Module[T any] struct {
	mu  sync.Mutex
	cfg Config[T]
	s   Slice[T]
	gen uint64
}

// NewModule builds a module with the resource's id/pagination conventions.
// hasMore starts true so the first load is never suppressed.
func NewModule[T any](cfg Config[T]) *Module[T] {
	return &Module[T]{cfg: cfg, s: Slice[T]{HasMore: true, CurrentPage: 1}}
}

// Snapshot returns a copy of the current slice.
func (m *Module[T]) Snapshot() Slice[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s
}

// Dispatch applies one action.
func (m *Module[T]) Dispatch(a Action[T]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = Reduce(m.cfg, m.s, a)
}

// List runs one paginated load. Append loads are suppressed while a load is
// in flight or when the slice has no more pages; a replace (fresh search or
// reload) is never suppressed and bumps the generation so any still-pending
// older response is discarded on arrival.
func (m *Module[T]) List(ctx context.Context, fetch ListFunc[T], page int, appendTo bool, term string) (Slice[T], error) {
	m.mu.Lock()
	if appendTo && (m.s.Loading || !m.s.HasMore) {
		snap := m.s
		m.mu.Unlock()
		return snap, nil
	}
	if !appendTo {
		m.gen++
	}
	gen := m.gen
	m.s = Reduce(m.cfg, m.s, SetLoading[T]{Loading: true})
	m.mu.Unlock()

	res, err := fetch(ctx, page, term)

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		// Superseded by a newer replace; drop the response. The newer
		// request owns the loading flag.
		return m.s, err
	}
	if err != nil {
		// A failed load keeps the pages already on screen.
		m.s = Reduce(m.cfg, m.s, SetLoading[T]{Loading: false})
		return m.s, err
	}
	if appendTo {
		m.s = Reduce(m.cfg, m.s, Append[T]{Items: res.Items, Page: res.Page, Term: term})
	} else {
		m.s = Reduce(m.cfg, m.s, Replace[T]{Items: res.Items, Page: res.Page, Term: term})
	}
	return m.s, nil
}
