// Package app assembles the framework: a service host, the core providers
// and an HTTP server wired to the container's router.
package app

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-servicehost/framework/config"
	"github.com/km-arc/go-servicehost/framework/container"
	"github.com/km-arc/go-servicehost/framework/providers"
	"github.com/km-arc/go-servicehost/framework/routing"
)

// Application is the top-level kernel. It embeds the service host, so user
// code calls app.AddSingleton, app.Get and app.CreateScope directly.
type Application struct {
	*container.Host
	Providers *container.ProviderRegistry

	server *http.Server
}

// New creates the host and registers the framework's core providers
// (config, logging, routing). Call Register for application providers,
// then Boot or Run.
func New(envFiles ...string) *Application {
	host := container.New()
	registry := container.NewProviderRegistry(host)

	app := &Application{
		Host:      host,
		Providers: registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.LoggingServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot phase on all registered providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the host.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Host, "config")
}

// Logger resolves the application *zap.Logger from the host.
func (a *Application) Logger() *zap.Logger {
	return container.Resolve[*zap.Logger](a.Host, "logger")
}

// Router resolves *routing.Router from the host.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Host, "router")
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }

// Run boots the application (if needed) and serves HTTP on APP_PORT until
// Shutdown is called or the listener fails.
func (a *Application) Run() error {
	if !a.Providers.Booted() {
		a.Boot()
	}

	cfg := a.Config()
	logger := a.Logger()

	a.server = &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: a.Router(),
	}

	logger.Info("server starting",
		zap.String("app", cfg.App.Name),
		zap.String("addr", a.server.Addr),
		zap.String("env", cfg.App.Env),
	)

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server, then drains the host's disposer so every
// singleton-owned resource is released in registration order.
func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	return a.Host.Close(ctx)
}
