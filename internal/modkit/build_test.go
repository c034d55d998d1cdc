package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"scrollpress/internal/modkit/httpkit"
)

func tagMW(order *[]string, tag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestBuild_AppliesOptions(t *testing.T) {
	t.Parallel()

	var order []string
	type ports struct{ n int }

	registered := false
	b := Build(
		WithName("scrolls"),
		WithPrefix("/scrolls"),
		WithMiddlewares(tagMW(&order, "outer"), tagMW(&order, "inner")),
		WithPorts(ports{n: 7}),
		WithRegister(func(httpkit.Router) { registered = true }),
	)

	if b.Name != "scrolls" || b.Prefix != "/scrolls" {
		t.Fatalf("name/prefix = %q %q", b.Name, b.Prefix)
	}
	if got, ok := b.Ports.(ports); !ok || got.n != 7 {
		t.Fatalf("ports = %#v", b.Ports)
	}
	if len(b.Mw) != 2 {
		t.Fatalf("middleware count = %d", len(b.Mw))
	}

	b.Register(nil)
	if !registered {
		t.Fatal("Register hook not applied")
	}
}

func TestBuild_MiddlewareOrderIsPreserved(t *testing.T) {
	t.Parallel()

	var order []string
	b := Build(WithMiddlewares(tagMW(&order, "a"), tagMW(&order, "b")))

	var h http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	})
	for i := len(b.Mw) - 1; i >= 0; i-- {
		h = b.Mw[i](h)
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "handler" {
		t.Fatalf("order = %v", order)
	}
}

func TestBuild_DefaultsAreCallable(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Subrouter == nil || b.Register == nil {
		t.Fatal("hooks should default to no-ops, not nil")
	}
	if got := b.Subrouter(nil); got != nil {
		t.Fatal("default subrouter should echo its input")
	}
	b.Register(nil) // must not panic
}

func TestBuild_WithSubrouter(t *testing.T) {
	t.Parallel()

	called := false
	b := Build(WithSubrouter(func(r httpkit.Router) httpkit.Router {
		called = true
		return r
	}))

	_ = b.Subrouter(nil)
	if !called {
		t.Fatal("custom subrouter not invoked")
	}
}

func TestBuild_CopiesMiddlewareSlice(t *testing.T) {
	t.Parallel()

	var order []string
	mws := []func(http.Handler) http.Handler{tagMW(&order, "x")}
	b := Build(WithMiddlewares(mws...))

	mws[0] = nil // mutating the caller's slice must not reach Built
	if b.Mw[0] == nil {
		t.Fatal("Build should copy the middleware slice")
	}
}
