package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func hit(t *testing.T, mux http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func textHandler(body string) Handler {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func TestAdaptChi_MountsAllVerbs(t *testing.T) {
	r := AdaptChi(chi.NewRouter())

	r.Get("/scrolls/{short_id}", textHandler("get"))
	r.Post("/scrolls", textHandler("post"))
	r.Put("/scrolls/{short_id}", textHandler("put"))
	r.Patch("/scrolls/{short_id}", textHandler("patch"))
	r.Delete("/scrolls/{short_id}", textHandler("delete"))
	r.Head("/scrolls/{short_id}", textHandler(""))
	r.Options("/scrolls", textHandler("options"))

	mux := r.Mux()
	cases := []struct {
		method, path, want string
	}{
		{"GET", "/scrolls/a1b2c3d4e5f6", "get"},
		{"POST", "/scrolls", "post"},
		{"PUT", "/scrolls/a1b2c3d4e5f6", "put"},
		{"PATCH", "/scrolls/a1b2c3d4e5f6", "patch"},
		{"DELETE", "/scrolls/a1b2c3d4e5f6", "delete"},
		{"OPTIONS", "/scrolls", "options"},
	}
	for _, c := range cases {
		rec := hit(t, mux, c.method, c.path)
		if rec.Code != http.StatusOK || rec.Body.String() != c.want {
			t.Fatalf("%s %s: code=%d body=%q", c.method, c.path, rec.Code, rec.Body.String())
		}
	}
	if rec := hit(t, mux, "HEAD", "/scrolls/a1b2c3d4e5f6"); rec.Code != http.StatusOK {
		t.Fatalf("HEAD: code=%d", rec.Code)
	}
}

func TestAdaptChi_RouteMountsSubtree(t *testing.T) {
	r := AdaptChi(chi.NewRouter())

	r.Route("/api/v1", func(api Router) {
		api.Route("/scrolls", func(s Router) {
			s.Get("/{short_id}", textHandler("scroll"))
		})
	})

	rec := hit(t, r.Mux(), "GET", "/api/v1/scrolls/a1b2c3d4e5f6")
	if rec.Code != http.StatusOK || rec.Body.String() != "scroll" {
		t.Fatalf("code=%d body=%q", rec.Code, rec.Body.String())
	}
	// sibling paths outside the subtree stay unrouted
	if rec := hit(t, r.Mux(), "GET", "/scrolls/a1b2c3d4e5f6"); rec.Code != http.StatusNotFound {
		t.Fatalf("unmounted path: code=%d", rec.Code)
	}
}

func TestAdaptChi_GroupScopesMiddleware(t *testing.T) {
	r := AdaptChi(chi.NewRouter())

	mark := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Scoped", "yes")
			next.ServeHTTP(w, req)
		})
	}

	r.Group(func(g Router) {
		g.Use(mark)
		g.Get("/inside", textHandler("in"))
	})
	r.Get("/outside", textHandler("out"))

	mux := r.Mux()
	if rec := hit(t, mux, "GET", "/inside"); rec.Header().Get("X-Scoped") != "yes" {
		t.Fatal("group middleware missing inside the group")
	}
	if rec := hit(t, mux, "GET", "/outside"); rec.Header().Get("X-Scoped") != "" {
		t.Fatal("group middleware leaked outside the group")
	}
}

func TestAdaptChi_UseAppliesGlobally(t *testing.T) {
	r := AdaptChi(chi.NewRouter())

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Global", "1")
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/anything", textHandler("ok"))

	rec := hit(t, r.Mux(), "GET", "/anything")
	if rec.Header().Get("X-Global") != "1" {
		t.Fatal("global middleware not applied")
	}
}

func TestAdaptChi_HandleMountsPlainHandler(t *testing.T) {
	r := AdaptChi(chi.NewRouter())

	r.Handle("/plain", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	if rec := hit(t, r.Mux(), "GET", "/plain"); rec.Code != http.StatusAccepted {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestAdaptChi_SubrouterMuxServes(t *testing.T) {
	r := AdaptChi(chi.NewRouter())

	var subMux http.Handler
	r.Route("/nested", func(s Router) {
		s.Get("/leaf", textHandler("leaf"))
		subMux = s.Mux()
	})

	if subMux == nil {
		t.Fatal("subrouter Mux is nil")
	}
	rec := hit(t, r.Mux(), "GET", "/nested/leaf")
	if rec.Code != http.StatusOK || rec.Body.String() != "leaf" {
		t.Fatalf("code=%d body=%q", rec.Code, rec.Body.String())
	}
}
