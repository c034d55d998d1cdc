// Package module wires scrolls into the API using modkit
package module

import (
	"net/http"

	modkit "scrollpress/internal/modkit"
	"scrollpress/internal/modkit/httpkit"
	"scrollpress/internal/modkit/repokit"
	str "scrollpress/internal/platform/strings"
	scrollshttp "scrollpress/internal/services/scrolls/http"
	scrollsrepo "scrollpress/internal/services/scrolls/repo"
	scrollssvc "scrollpress/internal/services/scrolls/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc scrollssvc.Service
}

// New constructs a scrolls module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("scrolls"), modkit.WithPrefix("/scrolls")}, opts...)...)

	repo := scrollsrepo.NewPG()
	db := repokit.WithBeginHooks(deps.PG, TxTimeoutHook(deps.Cfg))
	svc := scrollssvc.New(db, repo, QualityFromConfig(deps.Cfg))

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptScrollsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		scrollshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
