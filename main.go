package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/go-servicehost/framework/app"
	"github.com/km-arc/go-servicehost/framework/container"
	"github.com/km-arc/go-servicehost/framework/routing"
)

// RequestTrace is a per-request service: one instance per HTTP request,
// disposed when the request finishes.
type RequestTrace struct {
	Logger  *zap.Logger
	started time.Time
}

func NewRequestTrace() *RequestTrace {
	return &RequestTrace{started: time.Now()}
}

func (t *RequestTrace) Dispose() error {
	t.Logger.Debug("request finished", zap.Duration("took", time.Since(t.started)))
	return nil
}

// IDGen is transient: every resolution hands out a fresh ID.
type IDGen struct {
	ID int
}

func main() {
	application := app.New() // loads .env automatically

	// ── Bindings ─────────────────────────────────────────────────────────────

	application.AddScoped("trace", container.Construct(NewRequestTrace))
	application.AddTransient("idgen", container.Provide(func(c container.Collection) any {
		return &IDGen{ID: rand.Int()}
	}))

	// RequestTrace.Logger is filled from the ambient logger after
	// construction — declared here, not reflected at runtime.
	application.Injections().
		DeclareField((*RequestTrace)(nil), "Logger", "logger")

	application.Boot()

	// ── Routes ───────────────────────────────────────────────────────────────

	r := application.Router()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		scope := routing.ScopeFrom(req)
		trace := container.Resolve[*RequestTrace](scope, "trace")
		trace.Logger.Info("handling request", zap.String("scope", scope.ID()))

		id := container.Resolve[*IDGen](scope, "idgen")
		w.Write([]byte(time.Now().Format(time.RFC3339) + " id=" + strconv.Itoa(id.ID) + "\n"))
	})

	r.Get("/keys", func(w http.ResponseWriter, req *http.Request) {
		for _, k := range application.Keys() {
			w.Write([]byte(k + "\n"))
		}
	})

	// ── Serve until interrupted ──────────────────────────────────────────────

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.Shutdown(ctx); err != nil {
			application.Logger().Error("shutdown", zap.Error(err))
		}
	}()

	if err := application.Run(); err != nil {
		application.Logger().Fatal("server error", zap.Error(err))
	}
}
