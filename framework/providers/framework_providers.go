// Package providers contains the framework's core service providers.
package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-servicehost/framework/config"
	"github.com/km-arc/go-servicehost/framework/container"
	"github.com/km-arc/go-servicehost/framework/logging"
	"github.com/km-arc/go-servicehost/framework/routing"
)

// ── ConfigServiceProvider ────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the host as "config".
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(host *container.Host) {
	envFiles := p.EnvFiles
	host.AddSingleton("config", container.Provide(func(c container.Collection) any {
		return config.Load(envFiles...)
	}))
}

// ── LoggingServiceProvider ───────────────────────────────────────────────────

// LoggingServiceProvider registers the zap logger as "logger" and, during
// Boot, attaches the resolution observer so every later construction is
// traced at debug level.
type LoggingServiceProvider struct {
	container.BaseProvider
}

func (p *LoggingServiceProvider) Register(host *container.Host) {
	host.AddSingleton("logger", container.Provide(func(c container.Collection) any {
		cfg := container.Resolve[*config.Config](c, "config")
		return logging.New(cfg.Log)
	}))
}

func (p *LoggingServiceProvider) Boot(host *container.Host) {
	logger := container.Resolve[*zap.Logger](host, "logger")
	host.AfterResolving(logging.Observer(logger))
}

// ── RoutingServiceProvider ───────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router as "router" with the
// per-request scope middleware already installed, so scoped services work
// in every handler.
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(host *container.Host) {
	host.AddSingleton("router", container.Provide(func(c container.Collection) any {
		r := routing.New()
		logger, hasLogger := container.ResolveOK[*zap.Logger](c, "logger")
		r.Middleware(routing.ScopeMiddleware(host, func(err error) {
			if hasLogger {
				logger.Error("request scope teardown", zap.Error(err))
			}
		}))
		return r
	}))
}
