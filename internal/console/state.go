package console

import (
	"context"
	"sync"
)

// Action is a state transition for a ListState.
type Action interface{ action() }

// LoadStarted records that request Seq was issued.
type LoadStarted struct{ Seq uint64 }

// Loaded delivers the items fetched by request Seq.
type Loaded[T any] struct {
	Seq   uint64
	Items []T
}

// LoadFailed reports that request Seq failed.
type LoadFailed struct {
	Seq uint64
	Err error
}

// FilterChanged replaces the view filter.
type FilterChanged[F any] struct{ Filter F }

// Selected marks an item as selected. ID 0 clears the selection.
type Selected struct{ ID int64 }

func (LoadStarted) action()      {}
func (Loaded[T]) action()        {}
func (LoadFailed) action()       {}
func (FilterChanged[F]) action() {}
func (Selected) action()         {}

// ListState is the state of one list in a view.
type ListState[T, F any] struct {
	Items    []T
	Filter   F
	Selected int64
	Loading  bool
	Err      error

	// Requested is the newest request issued; Applied the newest whose
	// outcome is reflected in Items or Err.
	Requested uint64
	Applied   uint64
}

// Reduce returns the state after applying a. Outcomes of a request older
// than the newest issued or applied one are dropped.
func Reduce[T, F any](s ListState[T, F], a Action) ListState[T, F] {
	switch a := a.(type) {
	case LoadStarted:
		if a.Seq > s.Requested {
			s.Requested = a.Seq
			s.Loading = true
		}
	case Loaded[T]:
		if stale(s, a.Seq) {
			return s
		}
		s.Items = a.Items
		s.Err = nil
		s.Applied = a.Seq
		s.Loading = a.Seq < s.Requested
	case LoadFailed:
		if stale(s, a.Seq) {
			return s
		}
		s.Err = a.Err
		s.Applied = a.Seq
		s.Loading = a.Seq < s.Requested
	case FilterChanged[F]:
		s.Filter = a.Filter
	case Selected:
		s.Selected = a.ID
	}
	return s
}

func stale[T, F any](s ListState[T, F], seq uint64) bool {
	return seq <= s.Applied || seq < s.Requested
}

// View owns a ListState and serializes dispatches to it.
type View[T, F any] struct {
	mu    sync.Mutex
	seq   uint64
	state ListState[T, F]
}

// State returns a snapshot of the current state.
func (v *View[T, F]) State() ListState[T, F] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Dispatch applies a to the view state.
func (v *View[T, F]) Dispatch(a Action) {
	v.mu.Lock()
	v.state = Reduce(v.state, a)
	v.mu.Unlock()
}

// Begin issues the next request sequence number and marks the list loading.
func (v *View[T, F]) Begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	v.state = Reduce(v.state, LoadStarted{Seq: v.seq})
	return v.seq
}

// Load fetches the list with the current filter and applies the outcome.
// The returned items are the state after the load, which may come from a
// newer request if one finished first.
func (v *View[T, F]) Load(ctx context.Context, fetch func(context.Context, F) ([]T, error)) ([]T, error) {
	seq := v.Begin()
	items, err := fetch(ctx, v.State().Filter)
	if err != nil {
		v.Dispatch(LoadFailed{Seq: seq, Err: err})
		return nil, err
	}
	v.Dispatch(Loaded[T]{Seq: seq, Items: items})
	return v.State().Items, nil
}
