package container

import (
	"context"

	"github.com/google/uuid"
)

// Scope is a child resolution context chained to a host. Scoped bindings
// are cached here, one instance per scope; every other lifetime is delegated
// to the parent. A scope owns exactly the resources created through it —
// closing a scope never touches the parent's registry.
//
// Typical use is one scope per bounded operation, e.g. an HTTP request (see
// routing.ScopeMiddleware).
type Scope struct {
	parent *Host
	id     string

	// cache is keyed by binding identity, not by key string, so a binding
	// overwritten on the parent can never be confused with an instance this
	// scope built for its predecessor.
	cache    map[*binding]any
	disposer Disposer
}

func newScope(parent *Host) *Scope {
	return &Scope{
		parent: parent,
		id:     uuid.NewString(),
		cache:  make(map[*binding]any),
	}
}

// ID returns the scope's unique identifier, used for logging and request
// correlation.
func (s *Scope) ID() string { return s.id }

// Get resolves key within this scope. KeyCollection returns the scope
// itself. Keys unknown to the parent's table fall back to parent.Get, which
// also serves the remaining self-resolved keys. Scoped bindings are cached
// locally; singleton and transient bindings are resolved by the parent so
// their instances and disposal registrations stay with the host.
func (s *Scope) Get(key string) any {
	if key == KeyCollection {
		return s
	}

	b, ok := s.parent.lookup(key)
	if !ok {
		return s.parent.Get(key)
	}

	if b.lifetime != Scoped {
		return s.parent.Get(key)
	}

	if v, ok := s.cache[b]; ok {
		return v
	}
	v := b.factory(s)
	s.cache[b] = v
	s.parent.fireResolved(ResolveEvent{Key: key, Lifetime: Scoped, Instance: v, ScopeID: s.id})
	return v
}

// Inject constructs an instance with this scope as resolution context, so
// scoped dependencies of the new instance resolve here and its disposables
// are released when the scope closes.
func (s *Scope) Inject(ctor any, args ...any) any {
	return injectInto(s, s.parent.injections, ctor, args...)
}

// Defer registers a resource with the scope's disposer.
func (s *Scope) Defer(resource any) {
	s.disposer.Add(resource)
}

// Close releases the resources created through this scope, in registration
// order. It is idempotent; the parent's resources are untouched.
func (s *Scope) Close(ctx context.Context) error {
	return s.disposer.Close(ctx)
}
