package domain

import "context"

// ServicePort defines the service contract for scrolls
type ServicePort interface {
	// Ingest validates, canonicalizes, and stores a document
	Ingest(ctx context.Context, in IngestInput) (IngestResult, error)
	// Preview runs the full validation pipeline without persisting
	Preview(ctx context.Context, in IngestInput) (IngestResult, error)
	// Get returns the stored scroll for a short id
	Get(ctx context.Context, shortID string) (Scroll, error)
	// Archive re-derives the canonical tar archive for a short id
	Archive(ctx context.Context, shortID string) ([]byte, error)
}
