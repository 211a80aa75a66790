// Package module wires enquiries into the API using modkit
package module

import (
	"net/http"

	modkit "buyside/internal/modkit"
	"buyside/internal/modkit/httpkit"
	str "buyside/internal/platform/strings"
	"buyside/internal/services/api/enquiries/domain"
	enqhttp "buyside/internal/services/api/enquiries/http"
	enqrepo "buyside/internal/services/api/enquiries/repo"
	enqsvc "buyside/internal/services/api/enquiries/service"
)

// Ports exposed by the enquiries module
type Ports struct {
	Enquiries domain.EnquiriesPort
}

// Module implements the enquiries module
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

// New constructs the enquiries module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("enquiries"),
		modkit.WithPrefix("/enquiries"),
	}, opts...)...)

	cfg := deps.Cfg.Prefix("ENQUIRIES_")
	svc := enqsvc.New(deps.PG, enqrepo.NewPG(), enqsvc.Config{
		HardLimit: cfg.MayInt("HARD_LIMIT", 100),
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		ports:     Ports{Enquiries: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		enqhttp.Register(r, m.ports.Enquiries)
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
