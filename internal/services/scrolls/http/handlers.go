// Package http provides http transport for scrolls
package http

import (
	"fmt"
	stdhttp "net/http"

	"scrollpress/internal/modkit/httpkit"
	phttp "scrollpress/internal/platform/net/http"
	"scrollpress/internal/services/scrolls/domain"
	svc "scrollpress/internal/services/scrolls/service"

	"github.com/go-chi/chi/v5"
)

// Register mounts scrolls endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.IngestInput](r, "/", h.ingest)
	httpkit.PostJSON[domain.IngestInput](r, "/preview", h.preview)
	r.Get("/{short_id}", httpkit.Call(h.get))
	r.Get("/{short_id}/archive", h.archive)
}

type handlers struct{ svc svc.Service }

func (h *handlers) ingest(r *stdhttp.Request, in domain.IngestInput) (any, error) {
	res, err := h.svc.Ingest(r.Context(), in)
	if err != nil {
		return nil, err
	}
	if res.Accepted && !res.Existing {
		return httpkit.Created(res), nil
	}
	return res, nil
}

func (h *handlers) preview(r *stdhttp.Request, in domain.IngestInput) (any, error) {
	res, err := h.svc.Preview(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.OK(res), nil
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "short_id"))
}

// archive streams the canonical tar directly, outside the JSON envelope
func (h *handlers) archive(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	shortID := chi.URLParam(r, "short_id")
	tarBytes, err := h.svc.Archive(r.Context(), shortID)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/x-tar")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", shortID+".tar"))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(tarBytes)))
	_, _ = w.Write(tarBytes)
}
