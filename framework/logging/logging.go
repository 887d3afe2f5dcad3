// Package logging builds the application's zap logger and exposes a
// resolution observer that traces container activity.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/km-arc/go-servicehost/framework/config"
	"github.com/km-arc/go-servicehost/framework/container"
)

// New constructs a *zap.Logger from the log config. An unknown level falls
// back to info rather than failing bootstrap.
func New(cfg config.LogConfig) *zap.Logger {
	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		// Build only fails on broken output paths; the defaults never set any.
		return zap.NewNop()
	}
	return logger
}

// Observer returns a resolution observer that logs every service
// construction at debug level. Attach it with host.AfterResolving.
//
//	host.AfterResolving(logging.Observer(logger))
func Observer(log *zap.Logger) container.ResolveObserver {
	return func(e container.ResolveEvent) {
		fields := []zap.Field{
			zap.String("key", e.Key),
			zap.Stringer("lifetime", e.Lifetime),
		}
		if e.ScopeID != "" {
			fields = append(fields, zap.String("scope", e.ScopeID))
		}
		log.Debug("service constructed", fields...)
	}
}
