package container

import "reflect"

// Factory builds a concrete value against a resolution context. It may call
// Get or Inject on the context to pull its own dependencies; disposal of the
// result is handled by the context it was invoked with.
type Factory func(c Collection) any

// binding is the immutable registration record for one key: a lifetime tag
// and a synthesized factory. Singletons additionally carry a lazily written
// instance cell.
type binding struct {
	lifetime Lifetime
	factory  Factory
	cell     *instanceCell // non-nil for Singleton only
}

// instanceCell is the one mutable slot of an otherwise read-only binding.
// It is written at most once per successful construction, but a zero-valued
// result is never recognized as cached and rebuilds on the next resolution
// (see truthy).
type instanceCell struct {
	value any
}

// ── Binding shapes ───────────────────────────────────────────────────────────

// Shape declares how instances for a key are produced. The three shapes are
// explicit at registration time: Provide for a factory function, Construct
// for an injectable constructor with fixed arguments, Value for a pre-built
// instance. A constructor that fails is therefore reported as a failure
// instead of being retried under a different interpretation.
type Shape interface {
	factory() Factory
}

type provideShape struct{ fn Factory }

// Provide registers a plain factory function.
//
//	host.AddSingleton("logger", container.Provide(func(c container.Collection) any {
//	    return NewConsoleLogger()
//	}))
func Provide(fn Factory) Shape { return provideShape{fn: fn} }

func (s provideShape) factory() Factory { return s.fn }

type constructShape struct {
	ctor any
	args []any
}

// Construct registers an injectable constructor and its explicit arguments.
// The constructor is invoked through Inject on the resolving context, so
// declared field dependencies are filled from that context.
//
//	host.AddScoped("requestCtx", container.Construct(NewRequestContext, region))
func Construct(ctor any, args ...any) Shape { return constructShape{ctor: ctor, args: args} }

func (s constructShape) factory() Factory {
	return func(c Collection) any {
		return c.Inject(s.ctor, s.args...)
	}
}

type valueShape struct{ v any }

// Value registers an already-constructed instance. The factory is the
// identity function; the resolution context is ignored.
func Value(v any) Shape { return valueShape{v: v} }

func (s valueShape) factory() Factory {
	return func(Collection) any { return s.v }
}

// truthy reports whether a singleton cell holds a computed value. Zero
// values (nil, false, 0, "") are treated as not yet computed, so a factory
// returning one runs again on every resolution.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	return !reflect.ValueOf(v).IsZero()
}
