package container

import (
	"context"
	"fmt"
)

// Host is the root resolution context. It owns the binding table, the
// property-injection declarations and the root disposer, and it is the only
// context that can create scopes.
//
// Registration is expected to finish before the first resolution; the host
// is built for single-threaded composition, like the rest of the package.
type Host struct {
	bindings   map[string]*binding
	loaders    map[string]func()
	injections *Injections
	disposer   Disposer
	observers  []ResolveObserver
}

// New creates an empty Host with a fresh injection table.
func New() *Host {
	return &Host{
		bindings:   make(map[string]*binding),
		loaders:    make(map[string]func()),
		injections: NewInjections(),
	}
}

// Injections returns the host's property-injection table, for declaring
// (field, key) pairs at composition time.
func (h *Host) Injections() *Injections { return h.injections }

// ── Registration ─────────────────────────────────────────────────────────────

// AddSingleton binds key to a shape whose result is built once and reused
// for every later resolution on this host or any of its scopes.
func (h *Host) AddSingleton(key string, s Shape) { h.add(key, Singleton, s) }

// AddScoped binds key to a shape built once per Scope. Resolving the key on
// the host itself panics with ErrScopedOutsideScope.
func (h *Host) AddScoped(key string, s Shape) { h.add(key, Scoped, s) }

// AddTransient binds key to a shape built anew on every resolution.
func (h *Host) AddTransient(key string, s Shape) { h.add(key, Transient, s) }

// add synthesizes the uniform factory for a shape and stores the binding.
// Registering a key twice overwrites the earlier binding.
func (h *Host) add(key string, lifetime Lifetime, s Shape) {
	inner := s.factory()

	// Every construction path hands its result to the invoking context, so
	// disposable services never need manual Defer calls.
	fac := func(c Collection) any {
		v := inner(c)
		c.Defer(v)
		return v
	}

	b := &binding{lifetime: lifetime, factory: fac}
	if lifetime == Singleton {
		b.cell = &instanceCell{}
	}
	h.bindings[key] = b
}

// deferLoad arranges for load to run the first time key is looked up.
// Loading happens before lifetime dispatch, so the binding it installs is
// resolved with the lifetime rules and context of the original caller —
// including a scope's local cache for scoped bindings.
func (h *Host) deferLoad(key string, load func()) {
	h.loaders[key] = load
}

// lookup returns the binding for key, if any, running a pending lazy
// loader first. Scopes consult it to decide where an instance lives.
func (h *Host) lookup(key string) (*binding, bool) {
	if load, ok := h.loaders[key]; ok {
		delete(h.loaders, key)
		load()
	}
	b, ok := h.bindings[key]
	return b, ok
}

// Has reports whether key has a binding or a pending lazy loader.
// Self-resolved keys are not listed.
func (h *Host) Has(key string) bool {
	if _, ok := h.loaders[key]; ok {
		return true
	}
	_, ok := h.bindings[key]
	return ok
}

// Keys returns all registered keys (unordered), for diagnostics. Keys of
// lazy providers that have not loaded yet are included.
func (h *Host) Keys() []string {
	out := make([]string, 0, len(h.bindings)+len(h.loaders))
	for k := range h.bindings {
		out = append(out, k)
	}
	for k := range h.loaders {
		if _, bound := h.bindings[k]; !bound {
			out = append(out, k)
		}
	}
	return out
}

// ── Resolution ───────────────────────────────────────────────────────────────

// Get resolves key on the host. The well-known context keys return the host
// itself; an unregistered key returns nil.
func (h *Host) Get(key string) any {
	switch key {
	case KeyCollection, KeyContainer, KeyHost:
		return h
	}

	b, ok := h.lookup(key)
	if !ok {
		return nil
	}
	return h.dispatch(key, b, h)
}

// dispatch applies the binding's lifetime. c is the context factories run
// against: the host itself, except when a scope delegates construction here.
func (h *Host) dispatch(key string, b *binding, c Collection) any {
	switch b.lifetime {
	case Transient:
		return h.construct(key, b, c)

	case Singleton:
		if truthy(b.cell.value) {
			return b.cell.value
		}
		v := h.construct(key, b, c)
		b.cell.value = v
		return v

	case Scoped:
		panic(fmt.Errorf("container: [%s]: %w", key, ErrScopedOutsideScope))

	default:
		panic(fmt.Errorf("container: [%s]: %w: %d", key, ErrUnknownLifetime, b.lifetime))
	}
}

// construct runs the factory and notifies observers. Cache hits do not pass
// through here; observers see constructions only.
func (h *Host) construct(key string, b *binding, c Collection) any {
	v := b.factory(c)
	h.fireResolved(ResolveEvent{Key: key, Lifetime: b.lifetime, Instance: v})
	return v
}

// Inject constructs an instance with the host as resolution context.
func (h *Host) Inject(ctor any, args ...any) any {
	return injectInto(h, h.injections, ctor, args...)
}

// ── Scopes ───────────────────────────────────────────────────────────────────

// CreateScope produces a child resolution context chained to this host.
// The caller is responsible for closing it.
func (h *Host) CreateScope() *Scope {
	return newScope(h)
}

// ── Disposal ─────────────────────────────────────────────────────────────────

// Defer registers a resource with the host's disposer.
func (h *Host) Defer(resource any) {
	h.disposer.Add(resource)
}

// Close releases every resource registered through the host, in
// registration order. Scopes own their resources and are closed separately.
func (h *Host) Close(ctx context.Context) error {
	return h.disposer.Close(ctx)
}

// ── Observers ────────────────────────────────────────────────────────────────

// ResolveEvent describes one service construction. ScopeID is empty for
// constructions owned by the host.
type ResolveEvent struct {
	Key      string
	Lifetime Lifetime
	Instance any
	ScopeID  string
}

// ResolveObserver receives an event after each construction. Singleton and
// scoped cache hits are not reported.
type ResolveObserver func(e ResolveEvent)

// AfterResolving registers an observer fired after every construction on
// this host or its scopes.
func (h *Host) AfterResolving(fn ResolveObserver) {
	h.observers = append(h.observers, fn)
}

func (h *Host) fireResolved(e ResolveEvent) {
	for _, fn := range h.observers {
		fn(e)
	}
}
