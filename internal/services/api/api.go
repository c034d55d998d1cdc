// Package api provides the HTTP API for the application
package api

import (
	"scrollpress/internal/platform/config"
	"scrollpress/internal/platform/logger"
	phttp "scrollpress/internal/platform/net/http"
	"scrollpress/internal/platform/store"

	"scrollpress/internal/modkit"
	"scrollpress/internal/modkit/httpkit"
	"scrollpress/internal/modkit/module"

	metamod "scrollpress/internal/services/api/meta/module"
	scrollsmod "scrollpress/internal/services/scrolls/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	mods := []module.Module{
		metamod.New(deps),
		scrollsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
