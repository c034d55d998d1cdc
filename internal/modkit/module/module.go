// Package module holds the module contract and the port registry
package module

import (
	phttp "scrollpress/internal/platform/net/http"
)

// Module mirrors modkit.Module; declared here so a module exporting its
// own ports type avoids an import knot
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
