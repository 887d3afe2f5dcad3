package container_test

import (
	"context"
	"errors"
	"testing"

	"github.com/km-arc/go-servicehost/framework/container"
)

// ── test resources ───────────────────────────────────────────────────────────

// orderedResource records the order it was released in on a shared log.
type orderedResource struct {
	name string
	log  *[]string
	err  error
}

func (r *orderedResource) Dispose() error {
	*r.log = append(*r.log, r.name)
	return r.err
}

type ctxResource struct {
	gotCtx bool
}

func (r *ctxResource) DisposeContext(ctx context.Context) error {
	r.gotCtx = ctx != nil
	return nil
}

// Dispose must not be preferred over DisposeContext.
func (r *ctxResource) Dispose() error { return errors.New("wrong capability") }

type closerResource struct {
	closed bool
}

func (r *closerResource) Close() error {
	r.closed = true
	return nil
}

// ── ordering & idempotence ───────────────────────────────────────────────────

func TestDisposer_ReleasesInRegistrationOrder(t *testing.T) {
	var d container.Disposer
	var log []string

	for _, name := range []string{"d1", "d2", "d3"} {
		d.Add(&orderedResource{name: name, log: &log})
	}

	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}

	want := []string{"d1", "d2", "d3"}
	if len(log) != len(want) {
		t.Fatalf("released %d resources, want %d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("release %d: got %s, want %s", i, log[i], want[i])
		}
	}
}

func TestDisposer_SecondCloseReleasesNothing(t *testing.T) {
	var d container.Disposer
	var log []string
	d.Add(&orderedResource{name: "d1", log: &log})

	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if len(log) != 1 {
		t.Errorf("resource released %d times, want 1", len(log))
	}
}

// ── failure policy ───────────────────────────────────────────────────────────

func TestDisposer_FailureAbortsRemainingReleases(t *testing.T) {
	var d container.Disposer
	var log []string
	boom := errors.New("release failed")

	d.Add(&orderedResource{name: "d1", log: &log})
	d.Add(&orderedResource{name: "d2", log: &log, err: boom})
	d.Add(&orderedResource{name: "d3", log: &log})

	err := d.Close(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Close error = %v, want the release error", err)
	}
	if len(log) != 2 {
		t.Errorf("released %d resources before aborting, want 2", len(log))
	}
}

// ── capabilities ─────────────────────────────────────────────────────────────

func TestDisposer_PrefersContextCapability(t *testing.T) {
	var d container.Disposer
	r := &ctxResource{}
	d.Add(r)

	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !r.gotCtx {
		t.Error("DisposeContext was not called")
	}
}

func TestDisposer_HonorsIOCloser(t *testing.T) {
	var d container.Disposer
	r := &closerResource{}
	d.Add(r)

	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !r.closed {
		t.Error("io.Closer resource not closed")
	}
}

func TestDisposer_IgnoresPlainValues(t *testing.T) {
	var d container.Disposer

	if d.Add("not a resource") {
		t.Error("Add retained a value without a release capability")
	}
	if d.Len() != 0 {
		t.Errorf("Len = %d, want 0", d.Len())
	}
}

// ── integration with the host ────────────────────────────────────────────────

func TestHost_AutoRegistersDisposableResults(t *testing.T) {
	host := container.New()
	var log []string
	host.AddSingleton("a", container.Provide(func(c container.Collection) any {
		return &orderedResource{name: "a", log: &log}
	}))
	host.AddSingleton("b", container.Provide(func(c container.Collection) any {
		return &orderedResource{name: "b", log: &log}
	}))

	host.Get("a")
	host.Get("b")

	if err := host.Close(context.Background()); err != nil {
		t.Fatalf("host.Close: %v", err)
	}
	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Errorf("host released %v, want [a b]", log)
	}
}
