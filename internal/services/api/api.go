// Package api provides the HTTP API for the application
package api

import (
	"sktmorph/internal/platform/config"
	"sktmorph/internal/platform/logger"
	phttp "sktmorph/internal/platform/net/http"
	"sktmorph/internal/platform/net/middleware"
	"sktmorph/internal/platform/store/pg"

	"sktmorph/internal/modkit"
	"sktmorph/internal/modkit/httpkit"
	"sktmorph/internal/modkit/swaggerkit"

	analyzemod "sktmorph/internal/services/analyze/module"
	metamod "sktmorph/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	PG             *pg.PG // nil disables the analysis cache
	Logger         *logger.Logger
	Analyze        analyzemod.Options
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	r.Use(middleware.Heartbeat("/health"))

	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
		PG:  opt.PG,
	}

	analyze := analyzemod.New(deps, opt.Analyze)
	eng := analyze.Ports().(analyzemod.Ports).Engine

	mods := []modkit.Module{
		metamod.New(deps, eng.Config().Path),
		analyze,
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.CommonStack(httpkit.StackFromConfig(opt.Config.Prefix("CORE_API_")))
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
