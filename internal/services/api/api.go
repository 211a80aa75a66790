// Package api provides the HTTP API for the application
package api

import (
	"buyside/internal/platform/config"
	"buyside/internal/platform/logger"
	phttp "buyside/internal/platform/net/http"
	"buyside/internal/platform/store"

	"buyside/internal/modkit"
	"buyside/internal/modkit/httpkit"
	"buyside/internal/modkit/module"
	"buyside/internal/modkit/swaggerkit"

	agentsmod "buyside/internal/services/api/agents/module"
	analyticsmod "buyside/internal/services/api/analytics/module"
	enquiriesmod "buyside/internal/services/api/enquiries/module"
	metamod "buyside/internal/services/api/meta/module"
	reviewsmod "buyside/internal/services/api/reviews/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Agents first: reviews needs its Profiles port so fresh review stats
	// flow back into authority scoring
	agents := agentsmod.New(deps)
	profiles := module.MustPortsOf[agentsmod.Ports](agents).Profiles

	reviews := reviewsmod.New(
		deps,
		modkit.WithPorts(reviewsmod.Ports{Profiles: profiles}),
	)

	mods := []module.Module{
		metamod.New(deps),
		agents,
		reviews,
		enquiriesmod.New(deps),
		analyticsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
