// Package module wires analytics into the API using modkit
package module

import (
	"net/http"

	modkit "buyside/internal/modkit"
	"buyside/internal/modkit/httpkit"
	str "buyside/internal/platform/strings"
	"buyside/internal/services/api/analytics/domain"
	analyticshttp "buyside/internal/services/api/analytics/http"
	analyticsrepo "buyside/internal/services/api/analytics/repo"
	analyticssvc "buyside/internal/services/api/analytics/service"
)

// Ports exposed by the analytics module for cross-module wiring
type Ports struct {
	Analytics domain.AnalyticsPort
}

// Module implements the analytics module
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

// New constructs the analytics module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analytics"),
		modkit.WithPrefix("/analytics"),
	}, opts...)...)

	cfg := deps.Cfg.Prefix("ANALYTICS_")
	svc := analyticssvc.New(analyticsrepo.NewHybrid(deps.CH), analyticssvc.Config{
		TopLimit: cfg.MayInt("TOP_LIMIT", 10),
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		ports:     Ports{Analytics: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		analyticshttp.Register(r, m.ports.Analytics)
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

// Name is the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix is the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares is the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
