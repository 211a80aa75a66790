// Package module wires agents into the API using modkit
package module

import (
	"net/http"

	modkit "buyside/internal/modkit"
	"buyside/internal/modkit/httpkit"
	str "buyside/internal/platform/strings"
	"buyside/internal/services/api/agents/domain"
	agentshttp "buyside/internal/services/api/agents/http"
	agentsrepo "buyside/internal/services/api/agents/repo"
	agentssvc "buyside/internal/services/api/agents/service"
	"buyside/internal/services/api/authn"
)

// Ports exposed by the agents module for cross-module wiring
type Ports struct {
	Profiles domain.ProfilesPort
}

// Module implements the agents module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the agents module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("agents"),
		modkit.WithPrefix("/agents"),
	}, opts...)...)

	cfg := deps.Cfg.Prefix("AGENTS_")
	svc := agentssvc.New(deps.PG, agentsrepo.NewPG(), agentssvc.Config{
		DirectoryLimit: cfg.MayInt("DIRECTORY_LIMIT", 25),
	})
	auth := authn.Static(cfg.MayString("OPERATOR_TOKEN", ""))

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		ports:     Ports{Profiles: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		agentshttp.Register(r, m.ports.Profiles, auth)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
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

// Ports returns the module ports for cross wiring
func (m *Module) Ports() any { return m.ports }
