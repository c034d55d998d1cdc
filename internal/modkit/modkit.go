package modkit

import (
	phttp "scrollpress/internal/platform/net/http"
)

// Module is the contract every API module (scrolls, meta) satisfies;
// kept tiny so modules stay decoupled
type Module interface {
	// MountRoutes registers the module's HTTP routes on the router seam
	MountRoutes(r phttp.Router)
	// Ports returns the module's port bundle for cross-module wiring
	Ports() any

	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options;
// modules expose New(deps Deps, opts ...Option) Module in this shape
type Builder func(Deps, ...Option) Module
