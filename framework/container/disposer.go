package container

import (
	"context"
	"io"
)

// ── Release capabilities ─────────────────────────────────────────────────────

// Disposable is the synchronous release capability. A constructed service
// that implements it is registered with its owning resolution context
// automatically and released during that context's Close.
type Disposable interface {
	Dispose() error
}

// ContextDisposable is the context-aware release capability. It takes
// precedence over Disposable when both are implemented.
type ContextDisposable interface {
	DisposeContext(ctx context.Context) error
}

// io.Closer is honored as a third capability so that ordinary resources
// (files, connections) participate in disposal without an adapter.

// ── Disposer ─────────────────────────────────────────────────────────────────

// Disposer is an ordered registry of acquired resources. Each resolution
// context (host or scope) owns exactly one. Appending via Add is the only
// mutation; Close drains the registry exactly once.
type Disposer struct {
	resources []any
}

// Add registers a resource for release if it exposes one of the release
// capabilities. It reports whether the resource was retained.
func (d *Disposer) Add(resource any) bool {
	switch resource.(type) {
	case ContextDisposable, Disposable, io.Closer:
		d.resources = append(d.resources, resource)
		return true
	}
	return false
}

// Len returns the number of pending resources.
func (d *Disposer) Len() int { return len(d.resources) }

// Close releases every registered resource strictly in registration order,
// waiting for each release to finish before starting the next. A resource
// may therefore assume everything registered before it is already gone.
//
// The pending list is detached before draining, so Close is idempotent: a
// second call releases nothing. The first release error aborts the
// remaining releases.
func (d *Disposer) Close(ctx context.Context) error {
	pending := d.resources
	d.resources = nil

	for _, r := range pending {
		if err := release(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func release(ctx context.Context, resource any) error {
	switch r := resource.(type) {
	case ContextDisposable:
		return r.DisposeContext(ctx)
	case Disposable:
		return r.Dispose()
	case io.Closer:
		return r.Close()
	}
	return nil
}
