package console

import (
	"context"
	"sync"
)

// FetchFunc loads the data a view renders.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Snapshot is the state of a view at one instant.
type Snapshot[T any] struct {
	Data    T
	Err     error
	Loading bool
}

// View runs a fetch scoped to the time it is mounted. Every Mount refetches and
// replaces the state; a fetch that settles after Unmount, or after a newer Mount,
// is dropped and its context cancelled.
type View[T any] struct {
	mu      sync.Mutex
	gen     uint64
	mounted bool
	cancel  context.CancelFunc
	state   Snapshot[T]
}

func NewView[T any]() *View[T] {
	return &View[T]{}
}

// Mount starts a fetch and returns a channel closed once it has settled or been discarded.
func (v *View[T]) Mount(ctx context.Context, fetch FetchFunc[T]) <-chan struct{} {
	fetchCtx, cancel := context.WithCancel(ctx)

	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.gen++
	gen := v.gen
	v.mounted = true
	v.cancel = cancel
	var zero T
	v.state = Snapshot[T]{Data: zero, Loading: true}
	v.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()

		data, err := fetch(fetchCtx)

		v.mu.Lock()
		defer v.mu.Unlock()
		if !v.mounted || v.gen != gen {
			return
		}
		if err != nil {
			// failed fetches leave the view empty with the error visible
			v.state = Snapshot[T]{Err: err}
			return
		}
		v.state = Snapshot[T]{Data: data}
	}()
	return done
}

// Unmount cancels any in-flight fetch. Results arriving later are ignored.
func (v *View[T]) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mounted = false
	v.gen++
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.state.Loading = false
}

func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View[T]) Mounted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mounted
}

// Load mounts the view and waits for the fetch, or for ctx to end.
func (v *View[T]) Load(ctx context.Context, fetch FetchFunc[T]) Snapshot[T] {
	done := v.Mount(ctx, fetch)
	select {
	case <-done:
	case <-ctx.Done():
		v.Unmount()
		snap := v.Snapshot()
		if snap.Err == nil {
			snap.Err = ctx.Err()
		}
		return snap
	}
	return v.Snapshot()
}
