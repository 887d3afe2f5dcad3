package container

// ── ServiceProvider interface ────────────────────────────────────────────────

// ServiceProvider groups the registrations for one subsystem.
//
// Register binds services; Boot runs after ALL providers have registered,
// so it is the first safe place to resolve other bindings.
//
//	type StoreProvider struct{ container.BaseProvider }
//
//	func (p *StoreProvider) Register(host *container.Host) {
//	    host.AddSingleton("store", container.Provide(func(c container.Collection) any {
//	        cfg := container.Resolve[*config.Config](c, "config")
//	        return store.Open(cfg.Store.Path)
//	    }))
//	}
type ServiceProvider interface {
	// Register binds services into the host. Do NOT resolve other bindings
	// here — use Boot for that.
	Register(host *Host)

	// Boot is called after all providers are registered. Safe to resolve
	// and use any binding here.
	Boot(host *Host)

	// Provides returns the keys this provider registers. Only consulted for
	// deferred providers; eager providers may return nil.
	Provides() []string

	// IsDeferred reports whether the provider should be loaded lazily —
	// only when one of its Provides keys is first resolved.
	IsDeferred() bool
}

// BaseProvider is an embeddable struct with no-op Boot, Provides and
// IsDeferred. Embed it and override only what you need.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Host)     {}
func (p *BaseProvider) Provides() []string { return nil }
func (p *BaseProvider) IsDeferred() bool   { return false }

// ── ProviderRegistry ─────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders,
// including deferred (lazy) ones.
type ProviderRegistry struct {
	host       *Host
	eager      []ServiceProvider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to host.
func NewProviderRegistry(host *Host) *ProviderRegistry {
	return &ProviderRegistry{
		host:       host,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register method, unless the
// provider is deferred, in which case placeholder bindings are installed
// and the real registration runs on first resolution.
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true

	if provider.IsDeferred() {
		r.interceptDeferred(provider)
		return
	}

	provider.Register(r.host)
	r.eager = append(r.eager, provider)

	// A provider added after Boot is booted immediately.
	if r.booted {
		provider.Boot(r.host)
	}
}

// interceptDeferred installs a lazy loader for each deferred key. The first
// lookup of any of them runs the provider's real Register (and Boot, when
// the registry is already booted); resolution then proceeds against the
// real binding, under the caller's own context. Loading is not a
// construction, so it never touches a disposer.
func (r *ProviderRegistry) interceptDeferred(provider ServiceProvider) {
	loaded := false
	load := func() {
		if loaded {
			return
		}
		loaded = true
		provider.Register(r.host)
		if r.booted {
			provider.Boot(r.host)
		}
	}
	for _, key := range provider.Provides() {
		r.host.deferLoad(key, load)
	}
}

// Boot calls Boot on all eager providers. Call it once, after every
// provider has been registered; later calls are no-ops.
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, provider := range r.eager {
		provider.Boot(r.host)
	}
}

// Booted reports whether Boot has run.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered eager providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.eager }
