package container_test

import (
	"context"
	"testing"

	"github.com/km-arc/go-servicehost/framework/container"
)

type requestCtx struct {
	closed bool
}

func (r *requestCtx) Dispose() error {
	r.closed = true
	return nil
}

func newScopedHost(t *testing.T) *container.Host {
	t.Helper()
	host := container.New()
	host.AddScoped("requestCtx", container.Provide(func(c container.Collection) any {
		return &requestCtx{}
	}))
	return host
}

// ── Scoped caching ───────────────────────────────────────────────────────────

func TestScope_SameScopeSameInstance(t *testing.T) {
	host := newScopedHost(t)
	scope := host.CreateScope()

	a := scope.Get("requestCtx")
	b := scope.Get("requestCtx")

	if a != b {
		t.Error("one scope resolved a scoped key to two distinct instances")
	}
}

func TestScope_DifferentScopesDifferentInstances(t *testing.T) {
	host := newScopedHost(t)
	scopeA := host.CreateScope()
	scopeB := host.CreateScope()

	if scopeA.Get("requestCtx") == scopeB.Get("requestCtx") {
		t.Error("two scopes shared one scoped instance")
	}
}

func TestScope_DistinctIDs(t *testing.T) {
	host := newScopedHost(t)

	if host.CreateScope().ID() == host.CreateScope().ID() {
		t.Error("two scopes share an ID")
	}
}

// ── Delegation to the parent ─────────────────────────────────────────────────

func TestScope_SingletonSharedWithHost(t *testing.T) {
	host := container.New()
	host.AddSingleton("logger", container.Provide(func(c container.Collection) any {
		return &consoleLogger{}
	}))
	scope := host.CreateScope()

	if scope.Get("logger") != host.Get("logger") {
		t.Error("singleton resolved through a scope differs from the host's instance")
	}
}

func TestScope_TransientStillTransient(t *testing.T) {
	host := container.New()
	host.AddTransient("idgen", container.Provide(func(c container.Collection) any {
		return &idGen{}
	}))
	scope := host.CreateScope()

	if scope.Get("idgen") == scope.Get("idgen") {
		t.Error("transient resolved through a scope returned the same instance twice")
	}
}

func TestScope_UnknownKeyFallsBackToParent(t *testing.T) {
	host := newScopedHost(t)
	scope := host.CreateScope()

	if got := scope.Get("missing"); got != nil {
		t.Errorf("scope.Get(missing) = %v, want nil via parent fallback", got)
	}
}

// ── Self-resolution ──────────────────────────────────────────────────────────

func TestScope_CollectionKeyReturnsScope(t *testing.T) {
	host := newScopedHost(t)
	scope := host.CreateScope()

	if got := scope.Get(container.KeyCollection); got != any(scope) {
		t.Errorf("scope.Get(collection) = %v, want the scope itself", got)
	}
	if got := scope.Get(container.KeyHost); got != any(host) {
		t.Errorf("scope.Get(host) = %v, want the parent host", got)
	}
}

// Factories see the scope they were resolved through, so a scoped service
// can pull further scoped dependencies from the same scope.
func TestScope_FactoryContextIsTheScope(t *testing.T) {
	host := container.New()
	host.AddScoped("inner", container.Provide(func(c container.Collection) any {
		return &requestCtx{}
	}))
	host.AddScoped("outer", container.Provide(func(c container.Collection) any {
		return c.Get("inner")
	}))
	scope := host.CreateScope()

	if scope.Get("outer") != scope.Get("inner") {
		t.Error("a scoped factory did not resolve its dependency from the same scope")
	}
}

// ── Disposal ownership ───────────────────────────────────────────────────────

func TestScope_CloseReleasesScopedInstances(t *testing.T) {
	host := newScopedHost(t)
	scope := host.CreateScope()

	rc := scope.Get("requestCtx").(*requestCtx)
	if err := scope.Close(context.Background()); err != nil {
		t.Fatalf("scope.Close: %v", err)
	}
	if !rc.closed {
		t.Error("scoped instance not disposed on scope close")
	}
}

func TestScope_CloseDoesNotTouchHostResources(t *testing.T) {
	host := container.New()
	host.AddSingleton("root", container.Provide(func(c container.Collection) any {
		return &requestCtx{}
	}))
	scope := host.CreateScope()

	root := scope.Get("root").(*requestCtx) // built by the host, owned by the host
	if err := scope.Close(context.Background()); err != nil {
		t.Fatalf("scope.Close: %v", err)
	}
	if root.closed {
		t.Error("closing a scope released a host-owned singleton")
	}

	if err := host.Close(context.Background()); err != nil {
		t.Fatalf("host.Close: %v", err)
	}
	if !root.closed {
		t.Error("host.Close did not release its singleton")
	}
}

func TestScope_ObserverSeesScopeID(t *testing.T) {
	host := newScopedHost(t)

	var got container.ResolveEvent
	host.AfterResolving(func(e container.ResolveEvent) { got = e })

	scope := host.CreateScope()
	scope.Get("requestCtx")

	if got.ScopeID != scope.ID() {
		t.Errorf("event scope id %q, want %q", got.ScopeID, scope.ID())
	}
	if got.Lifetime != container.Scoped {
		t.Errorf("event lifetime %v, want Scoped", got.Lifetime)
	}
}
