// Package container provides a lifetime-aware IoC (Inversion of Control)
// container for Go: a Host that binds string keys to construction shapes,
// resolves them as singleton, scoped or transient services, and releases
// the resources resolved instances own.
//
// # Host Lifecycle
//
//  1. Create: host := container.New()
//  2. Register: host.AddSingleton("logger", container.Provide(...))
//  3. Resolve: log := container.Resolve[*zap.Logger](host, "logger")
//  4. Tear down: host.Close(ctx)
//
// Registration should finish before the first resolution. The host is not
// safe for concurrent resolution; compose it on one goroutine.
//
// # Lifetimes
//
//	// Singleton — built once, cached on the host
//	host.AddSingleton("logger", container.Provide(func(c container.Collection) any {
//	    return NewConsoleLogger()
//	}))
//
//	// Transient — built on every Get
//	host.AddTransient("idgen", container.Provide(func(c container.Collection) any {
//	    return &IDGen{ID: randomID()}
//	}))
//
//	// Scoped — built once per scope
//	host.AddScoped("requestCtx", container.Provide(func(c container.Collection) any {
//	    return NewRequestContext()
//	}))
//
//	scope := host.CreateScope()
//	defer scope.Close(ctx)
//	rc := container.Resolve[*RequestContext](scope, "requestCtx")
//
// Resolving a scoped key on the host itself panics; resolving a key that
// was never registered returns nil, never panics.
//
// # Binding shapes
//
// Registration states explicitly how instances are produced:
//
//	container.Provide(fn)            // factory function
//	container.Construct(ctor, args)  // constructor run through Inject
//	container.Value(v)               // pre-built instance
//
// # Property injection
//
// Field dependencies are declared, not reflected:
//
//	host.Injections().
//	    DeclareField((*ReportJob)(nil), "Logger", "logger").
//	    DeclareField((*ReportJob)(nil), "Store", "store")
//
//	job := host.Inject(NewReportJob, "daily").(*ReportJob)
//
// Inject calls the constructor with the explicit arguments, then fills each
// declared field via Get on the context Inject was called on — so a job
// injected inside a scope receives that scope's scoped services.
//
// # Disposal
//
// A constructed value implementing Disposable, ContextDisposable or
// io.Closer is registered with the context that built it. Close releases
// resources one at a time in registration order and is idempotent. A scope
// releases exactly what was built through it; the host releases the rest.
//
// # Self-resolution
//
// Get(container.KeyCollection), Get(container.KeyContainer) and
// Get(container.KeyHost) return the ambient context without registration,
// so factories and injected fields can depend on the container itself.
package container
