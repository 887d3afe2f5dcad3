package container

import "errors"

var (
	// ErrScopedOutsideScope is raised (via panic) when a scoped binding is
	// resolved on the host itself. The host has no per-scope cache; scoped
	// bindings must be resolved through a Scope created with CreateScope.
	ErrScopedOutsideScope = errors.New("scoped binding resolved outside a scope")

	// ErrUnknownLifetime indicates a binding whose lifetime tag is not one
	// of Singleton, Scoped or Transient. Unreachable through the public
	// registration API.
	ErrUnknownLifetime = errors.New("unknown lifetime")
)
