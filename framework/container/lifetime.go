package container

// Lifetime controls how instances produced for a binding are shared.
type Lifetime int

const (
	// Singleton — one instance per host, created on first resolution and
	// cached for every later Get.
	Singleton Lifetime = iota

	// Scoped — one instance per Scope. Resolving a scoped binding directly
	// on the host is a programmer error.
	Scoped

	// Transient — a new instance on every resolution.
	Transient
)

// String returns the human-readable name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}
