package routing

import (
	"context"
	"net/http"

	"github.com/km-arc/go-servicehost/framework/container"
)

type scopeCtxKey struct{}

// ScopeMiddleware opens a container scope for each request and closes it —
// disposing every request-scoped resource — when the handler returns.
// onCloseErr, if non-nil, receives teardown errors; the response has
// usually been written by then, so they cannot change the status code.
//
//	r.Middleware(routing.ScopeMiddleware(host, func(err error) {
//	    logger.Error("request scope teardown", zap.Error(err))
//	}))
func ScopeMiddleware(host *container.Host, onCloseErr func(error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := host.CreateScope()
			defer func() {
				if err := scope.Close(r.Context()); err != nil && onCloseErr != nil {
					onCloseErr(err)
				}
			}()

			ctx := context.WithValue(r.Context(), scopeCtxKey{}, scope)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ScopeFrom returns the request's scope, or nil when ScopeMiddleware is not
// installed on the route.
func ScopeFrom(r *http.Request) *container.Scope {
	scope, _ := r.Context().Value(scopeCtxKey{}).(*container.Scope)
	return scope
}
