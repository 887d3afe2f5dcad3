package container

import (
	"context"
	"fmt"
	"reflect"
)

// ── Resolution context ───────────────────────────────────────────────────────

// Well-known keys resolved without consulting the binding table. The host
// answers all three with itself; a scope answers KeyCollection with itself
// and lets the other two fall through to its parent. Injected components can
// therefore request a handle to the ambient context without any
// registration.
const (
	KeyCollection = "collection"
	KeyContainer  = "container"
	KeyHost       = "host"
)

// Collection is the resolution context: the host or one of its scopes.
type Collection interface {
	// Get resolves a key within this context. It returns nil for a key that
	// was never registered — callers must nil-check. Resolving a Scoped
	// binding on the host panics with ErrScopedOutsideScope.
	Get(key string) any

	// Inject constructs an instance directly, bypassing the binding table.
	// ctor must be a function; it is called with the given explicit
	// arguments and its first return value becomes the instance. Field
	// dependencies declared for the instance's type are then resolved via
	// Get on this same context and assigned.
	Inject(ctor any, args ...any) any

	// Defer hands a resource to this context's disposer. Resources without
	// a release capability are ignored. Factories rarely need this: any
	// disposable value they return is deferred automatically.
	Defer(resource any)

	// Close releases every resource this context's factories registered, in
	// registration order, exactly once.
	Close(ctx context.Context) error
}

// ── Reflect helpers ──────────────────────────────────────────────────────────

// TypeKey returns the package-qualified type name of v, useful as a stable
// key when registering interfaces.
//
//	key := container.TypeKey((*UserRepository)(nil))
//	host.AddSingleton(key, container.Provide(newUserRepository))
//	repo := container.Resolve[UserRepository](host, key)
func TypeKey(v any) string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// ── Generics helpers ─────────────────────────────────────────────────────────

// Resolve calls Get and type-asserts the result. It panics when the key is
// unregistered or resolves to a different type.
//
//	// Instead of: log := c.Get("logger").(*zap.Logger)
//	// Write:      log := container.Resolve[*zap.Logger](c, "logger")
func Resolve[T any](c Collection, key string) T {
	instance := c.Get(key)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), key, instance))
	}
	return typed
}

// ResolveOK is like Resolve but returns (T, bool) without panicking.
func ResolveOK[T any](c Collection, key string) (T, bool) {
	instance := c.Get(key)
	typed, ok := instance.(T)
	return typed, ok
}
