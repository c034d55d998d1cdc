package module

import (
	"context"

	scrollsdom "scrollpress/internal/services/scrolls/domain"
	scrollssvc "scrollpress/internal/services/scrolls/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptScrollsPort adapts the scrolls service to the domain port interface
type adaptScrollsPort struct{ svc scrollssvc.Service }

// Ingest implements the domain ServicePort interface
func (a adaptScrollsPort) Ingest(ctx context.Context, in scrollsdom.IngestInput) (scrollsdom.IngestResult, error) {
	return a.svc.Ingest(ctx, in)
}

// Preview implements the domain ServicePort interface
func (a adaptScrollsPort) Preview(ctx context.Context, in scrollsdom.IngestInput) (scrollsdom.IngestResult, error) {
	return a.svc.Preview(ctx, in)
}

// Get implements the domain ServicePort interface
func (a adaptScrollsPort) Get(ctx context.Context, shortID string) (scrollsdom.Scroll, error) {
	return a.svc.Get(ctx, shortID)
}

// Archive implements the domain ServicePort interface
func (a adaptScrollsPort) Archive(ctx context.Context, shortID string) ([]byte, error) {
	return a.svc.Archive(ctx, shortID)
}
