// Package state holds the in-memory panel state, one slice per backend
// resource. Each slice is mutated only by its own pure reducer; the action
// set is a closed sum type so a new action kind fails to compile anywhere it
// is not handled.
package state

import entity "kyuna.GO/model/entity"

// Action is the closed set of slice transitions. Only the types in this file
// implement it.
type Action[T any] interface {
	isAction()
}

// Replace swaps the whole collection for a fresh first page (initial load or
// a new search).
type Replace[T any] struct {
	Items []T
	Page  entity.Pagination
	Term  string
}

// Append concatenates a follow-up page onto the collection.
type Append[T any] struct {
	Items []T
	Page  entity.Pagination
	Term  string
}

// ReplaceAll swaps the list root without touching pagination. The items
// create response is the whole payload, not a delta, so that screen folds it
// with this action.
type ReplaceAll[T any] struct {
	Items []T
}

// Prepend puts a newly created entity at the head of the collection.
type Prepend[T any] struct {
	Item T
}

// UpdateByID replaces the entry whose id matches; no match leaves the
// collection untouched.
type UpdateByID[T any] struct {
	Item T
}

// RemoveByID filters the matching entry out of the collection.
type RemoveByID[T any] struct {
	ID string
}

// SetSelected fills the single selected-entity slot; the list is untouched.
type SetSelected[T any] struct {
	Item T
}

// SetLoading flips the in-flight flag.
type SetLoading[T any] struct {
	Loading bool
}

func (Replace[T]) isAction()    {}
func (Append[T]) isAction()     {}
func (ReplaceAll[T]) isAction() {}
func (Prepend[T]) isAction()    {}
func (UpdateByID[T]) isAction() {}
func (RemoveByID[T]) isAction() {}
func (SetSelected[T]) isAction() {}
func (SetLoading[T]) isAction() {}

// Slice is one resource's view state.
type Slice[T any] struct {
	Items       []T
	Selected    *T
	Loading     bool
	HasMore     bool
	CurrentPage int
	SearchTerm  string
}

// Config fixes the per-resource conventions: how to read an entity's id and
// which pagination field decides has-more.
type Config[T any] struct {
	ID      func(T) string
	HasMore func(entity.Pagination) bool
}

// HasMoreNextPageFlag is the items/categories/queries convention.
func HasMoreNextPageFlag(p entity.Pagination) bool {
	return p.HasNextPage
}

// HasMorePageCount is the orders convention.
func HasMorePageCount(p entity.Pagination) bool {
	return p.CurrentPage < p.TotalPages
}

// Reduce folds one action into a slice. It is a pure function: no I/O, no
// clock, and the input slice's backing array is never mutated in place. When
// an id-keyed action matches nothing the input state is returned as-is,
// reference included.
func Reduce[T any](cfg Config[T], s Slice[T], a Action[T]) Slice[T] {
	switch act := a.(type) {
	case Replace[T]:
		s.Items = act.Items
		s.CurrentPage = pageOr(act.Page.CurrentPage, 1)
		s.HasMore = cfg.HasMore(act.Page)
		s.SearchTerm = act.Term
		s.Loading = false
	case Append[T]:
		merged := make([]T, 0, len(s.Items)+len(act.Items))
		merged = append(merged, s.Items...)
		merged = append(merged, act.Items...)
		s.Items = merged
		s.CurrentPage = pageOr(act.Page.CurrentPage, s.CurrentPage+1)
		s.HasMore = cfg.HasMore(act.Page)
		s.SearchTerm = act.Term
		s.Loading = false
	case ReplaceAll[T]:
		s.Items = act.Items
	case Prepend[T]:
		out := make([]T, 0, len(s.Items)+1)
		out = append(out, act.Item)
		out = append(out, s.Items...)
		s.Items = out
	case UpdateByID[T]:
		id := cfg.ID(act.Item)
		idx := -1
		for i := range s.Items {
			if cfg.ID(s.Items[i]) == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return s
		}
		out := make([]T, len(s.Items))
		copy(out, s.Items)
		out[idx] = act.Item
		s.Items = out
	case RemoveByID[T]:
		idx := -1
		for i := range s.Items {
			if cfg.ID(s.Items[i]) == act.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return s
		}
		out := make([]T, 0, len(s.Items)-1)
		out = append(out, s.Items[:idx]...)
		out = append(out, s.Items[idx+1:]...)
		s.Items = out
	case SetSelected[T]:
		item := act.Item
		s.Selected = &item
	case SetLoading[T]:
		s.Loading = act.Loading
	}
	return s
}

func pageOr(page, fallback int) int {
	if page > 0 {
		return page
	}
	return fallback
}
