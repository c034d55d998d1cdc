package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scrollpress/internal/platform/config"
	phttp "scrollpress/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

// Covers the server lifecycle: the NewServer option hook, middleware
// before routes, Run, and graceful Shutdown mapping ErrServerClosed
// to nil
func TestServer_RunAndShutdown(t *testing.T) {
	// ephemeral local port so parallel CI runs do not collide
	t.Setenv("API_PORT", "127.0.0.1:0")

	optCalled := false
	srv := phttp.NewServer(config.New(), func(m *chi.Mux) {
		// routes must not be mounted here; chi panics on late Use otherwise
		optCalled = true
	})
	if !optCalled {
		t.Fatal("NewServer option hook not invoked")
	}

	r := srv.Router()

	// middleware has to be registered before any route
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Scrollpress", "1")
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/api/v1/scrolls/{short_id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "scroll")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// let the listener come up
	time.Sleep(50 * time.Millisecond)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/scrolls/a1b2c3d4e5f6", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "scroll" {
		t.Fatalf("route: %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Scrollpress") != "1" {
		t.Fatal("middleware header missing")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func TestServer_Run_ReturnsListenError(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:abc") // net.Listen cannot parse this port

	srv := phttp.NewServer(config.New())
	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected Run to fail on invalid addr")
	}
}
