package container

import (
	"fmt"
	"reflect"
)

// ── Injection declarations ───────────────────────────────────────────────────

// FieldDep names one injected field: after construction, Field is assigned
// the result of Get(Key) on the resolving context.
type FieldDep struct {
	Field string
	Key   string
}

// Injections is the declarative property-injection table: for each concrete
// type, the ordered list of (field, key) pairs to fill after construction.
// It is populated by explicit DeclareField calls at composition time; the
// container only ever reads it.
type Injections struct {
	deps map[reflect.Type][]FieldDep
}

// NewInjections creates an empty table.
func NewInjections() *Injections {
	return &Injections{deps: make(map[reflect.Type][]FieldDep)}
}

// DeclareField records that instances of prototype's type get field filled
// from key. prototype is a value of the constructed type, typically a nil
// pointer:
//
//	table.DeclareField((*ReportJob)(nil), "Logger", "logger").
//	    DeclareField((*ReportJob)(nil), "Store", "store")
//
// Declarations apply in the order they were made.
func (t *Injections) DeclareField(prototype any, field, key string) *Injections {
	rt := reflect.TypeOf(prototype)
	t.deps[rt] = append(t.deps[rt], FieldDep{Field: field, Key: key})
	return t
}

func (t *Injections) fieldsFor(rt reflect.Type) []FieldDep {
	return t.deps[rt]
}

// ── Construction ─────────────────────────────────────────────────────────────

// injectInto is the shared Inject implementation. c is the current
// resolution context — host or scope — so injected dependencies obey the
// lifetime rules of where Inject was called, not where the type was defined.
func injectInto(c Collection, table *Injections, ctor any, args ...any) any {
	fn := reflect.ValueOf(ctor)
	if fn.Kind() != reflect.Func {
		panic(fmt.Sprintf("container: Inject: constructor must be a function, got %T", ctor))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}

	out := fn.Call(in)
	if len(out) == 0 {
		panic("container: Inject: constructor must return a value")
	}
	instance := out[0].Interface()

	for _, dep := range table.fieldsFor(reflect.TypeOf(instance)) {
		assignField(instance, dep.Field, c.Get(dep.Key))
	}
	return instance
}

// assignField sets a named field on instance, which must be a pointer to a
// struct. A nil dependency (unregistered key) leaves the field at its zero
// value.
func assignField(instance any, field string, value any) {
	if value == nil {
		return
	}

	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("container: Inject: cannot set field %q on non-struct %T", field, instance))
	}

	f := rv.Elem().FieldByName(field)
	if !f.IsValid() || !f.CanSet() {
		panic(fmt.Sprintf("container: Inject: no settable field %q on %T", field, instance))
	}
	f.Set(reflect.ValueOf(value))
}
