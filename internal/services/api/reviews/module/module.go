// Package module wires reviews into the API using modkit
package module

import (
	"net/http"

	modkit "buyside/internal/modkit"
	"buyside/internal/modkit/httpkit"
	str "buyside/internal/platform/strings"
	agentsdom "buyside/internal/services/api/agents/domain"
	"buyside/internal/services/api/authn"
	"buyside/internal/services/api/reviews/domain"
	reviewshttp "buyside/internal/services/api/reviews/http"
	reviewsrepo "buyside/internal/services/api/reviews/repo"
	reviewssvc "buyside/internal/services/api/reviews/service"
)

// Ports carries the exposed reviews surface and, on the way in, the agents
// port the service needs for the scoring feedback sync
type Ports struct {
	Reviews  domain.ReviewsPort
	Profiles agentsdom.ProfilesPort
}

// Module implements the reviews module
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

// New constructs the reviews module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reviews"),
		modkit.WithPrefix("/reviews"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}

	cfg := deps.Cfg.Prefix("REVIEWS_")
	svc := reviewssvc.New(deps.PG, reviewsrepo.NewPG(), reviewssvc.Config{
		HardLimit: cfg.MayInt("HARD_LIMIT", 100),
	})
	if injected.Profiles != nil {
		svc.WithProfiles(injected.Profiles)
	}
	auth := authn.Static(cfg.MayString("OPERATOR_TOKEN", ""))

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		ports:     Ports{Reviews: svc, Profiles: injected.Profiles},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		reviewshttp.Register(r, m.ports.Reviews, auth)
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
